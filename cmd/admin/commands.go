package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/application/usecase"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/pkg/config"
)

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica el esquema de base de datos (idempotente)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if e.store.Driver == config.DriverMemory {
				fmt.Fprintln(cmd.OutOrStdout(), "DB_DRIVER=memory: no hay esquema que aplicar")
				return nil
			}
			if err := e.store.Migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "esquema aplicado")
			return nil
		},
	}
}

func newCreateUserCmd(e *env) *cobra.Command {
	var username, password, role string

	cmd := &cobra.Command{
		Use:   "crear-usuario",
		Short: "Crea un usuario (por defecto Administrador)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := usecase.NewUserUseCase(e.store.Users)
			user, err := uc.Create(cmd.Context(), dto.CreateUserRequest{
				NombreUsuario: username,
				Password:      password,
				Rol:           role,
				Estado:        entity.StatusActive,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "usuario %q creado (id %d, rol %s)\n", user.NombreUsuario, user.ID, user.Rol)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "usuario", "", "nombre de usuario")
	cmd.Flags().StringVar(&password, "password", "", "contraseña")
	cmd.Flags().StringVar(&role, "rol", entity.RoleAdmin, "Administrador o Empleado")
	_ = cmd.MarkFlagRequired("usuario")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newStockCmd(e *env) *cobra.Command {
	var maxStock int

	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Lista productos con su stock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := usecase.NewProductUseCase(e.store.Products, e.store.Movements)
			var (
				products []dto.ProductResponse
				err      error
			)
			if cmd.Flags().Changed("bajo") {
				products, err = uc.LowStock(cmd.Context(), maxStock)
			} else {
				products, err = uc.List(cmd.Context(), "")
			}
			if err != nil {
				return err
			}
			renderStock(cmd.OutOrStdout(), products)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxStock, "bajo", 5, "solo productos con stock menor o igual a N")
	return cmd
}

func renderStock(w io.Writer, products []dto.ProductResponse) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Código", "Nombre", "Stock", "P. compra", "P. venta"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	for _, p := range products {
		t.AppendRow(table.Row{p.ID, p.Codigo, p.Nombre, p.StockActual, p.PrecioCompra, p.PrecioVenta})
	}
	t.AppendFooter(table.Row{"", "", "Total", len(products)})
	t.Render()
}

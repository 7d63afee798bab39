package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo agrega en memoria lo mismo que las consultas SQL de reportes.
type ReportRepo struct {
	v view
}

type reportMovement struct {
	m       entity.Movement
	p       entity.Product
	typ     string
	usuario string
}

// matching movimientos del filtro con sus joins (producto, tipo, usuario).
func (r *ReportRepo) matching(f repository.ReportFilter) ([]reportMovement, error) {
	from, to := dateOnly(f.From), dateOnly(f.To)
	var out []reportMovement
	err := r.v.read(func(st *state) error {
		for _, m := range st.movements {
			if m.Date.Before(from) || m.Date.After(to) {
				continue
			}
			t := st.types[m.MovementTypeID]
			if f.TypeName != "" && t.Name != f.TypeName {
				continue
			}
			out = append(out, reportMovement{
				m:       m,
				p:       st.products[m.ProductID],
				typ:     t.Name,
				usuario: st.users[m.UserID].Username,
			})
		}
		return nil
	})
	return out, err
}

// GetTotals totales del período.
func (r *ReportRepo) GetTotals(_ context.Context, f repository.ReportFilter) (repository.ReportTotals, error) {
	rows, err := r.matching(f)
	if err != nil {
		return repository.ReportTotals{}, err
	}
	out := repository.ReportTotals{Revenue: decimal.Zero, Cost: decimal.Zero}
	for _, rm := range rows {
		q := decimal.NewFromInt(int64(rm.m.Quantity))
		out.Movements++
		out.Units += int64(rm.m.Quantity)
		out.Revenue = out.Revenue.Add(q.Mul(rm.p.SalePrice))
		out.Cost = out.Cost.Add(q.Mul(rm.p.PurchasePrice))
	}
	return out, nil
}

// GetProductRows agrupa por producto, ordena por ingresos y aplica el límite.
func (r *ReportRepo) GetProductRows(_ context.Context, f repository.ReportFilter) ([]repository.ProductReportRow, error) {
	rows, err := r.matching(f)
	if err != nil {
		return nil, err
	}
	byProduct := map[int64]*repository.ProductReportRow{}
	for _, rm := range rows {
		agg, ok := byProduct[rm.p.ID]
		if !ok {
			agg = &repository.ProductReportRow{ProductID: rm.p.ID, Code: rm.p.Code, Name: rm.p.Name}
			byProduct[rm.p.ID] = agg
		}
		q := decimal.NewFromInt(int64(rm.m.Quantity))
		agg.Units += int64(rm.m.Quantity)
		agg.Revenue = agg.Revenue.Add(q.Mul(rm.p.SalePrice))
		agg.Cost = agg.Cost.Add(q.Mul(rm.p.PurchasePrice))
	}
	out := make([]repository.ProductReportRow, 0, len(byProduct))
	for _, agg := range byProduct {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Revenue.Cmp(out[j].Revenue); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// GetMovementRows detalle más reciente primero, con límite.
func (r *ReportRepo) GetMovementRows(_ context.Context, f repository.ReportFilter) ([]repository.MovementReportRow, error) {
	rows, err := r.matching(f)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].m, rows[j].m
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	if f.Limit > 0 && len(rows) > f.Limit {
		rows = rows[:f.Limit]
	}
	out := make([]repository.MovementReportRow, 0, len(rows))
	for _, rm := range rows {
		out = append(out, repository.MovementReportRow{
			MovementID:  rm.m.ID,
			Date:        rm.m.Date,
			TypeName:    rm.typ,
			ProductCode: rm.p.Code,
			ProductName: rm.p.Name,
			Quantity:    rm.m.Quantity,
			UnitPrice:   rm.p.SalePrice,
			Total:       rm.p.SalePrice.Mul(decimal.NewFromInt(int64(rm.m.Quantity))),
			Username:    rm.usuario,
			Reason:      rm.m.Reason,
		})
	}
	return out, nil
}

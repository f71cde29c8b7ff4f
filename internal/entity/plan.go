package entity

import "errors"

var ErrPlanNotFound = errors.New("plano não encontrado")

type Plan struct {
	ID               string
	Name             string
	PriceCents       int
	MaxSites         int
	MaxLeadsPerMonth int // 0 = ilimitado
}

// AllowsLeads diz se o plano comporta mais um lead no mês corrente.
func (p *Plan) AllowsLeads(currentMonthCount int) bool {
	if p.MaxLeadsPerMonth <= 0 {
		return true
	}
	return currentMonthCount < p.MaxLeadsPerMonth
}

// AllowsSites diz se o plano comporta mais um site.
func (p *Plan) AllowsSites(currentCount int) bool {
	if p.MaxSites <= 0 {
		return true
	}
	return currentCount < p.MaxSites
}

// Package models contains the database model definitions of the site.
//
// The Store owns three content collections (portfolio, today_design and
// site_settings) plus two bookkeeping tables: access_secrets holding the
// hashed write guard secret and seed_markers recording one time seeding.
package models

// All returns every model, in migration order.
func All() []interface{} {
	return []interface{}{
		&PortfolioItem{},
		&DesignProposal{},
		&SiteSetting{},
		&AccessSecret{},
		&SeedMarker{},
	}
}

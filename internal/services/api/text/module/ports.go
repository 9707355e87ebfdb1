package module

import "linguaforge/internal/services/text/domain"

// Ports is the text module port set. The languages module reuses Catalog
type Ports struct {
	Text    domain.ServicePort
	Catalog domain.CatalogPort
}

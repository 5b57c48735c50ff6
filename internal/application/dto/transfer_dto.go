package dto

// ImportResult resultado de una importación masiva.
type ImportResult struct {
	Format   string   `json:"format"`
	Read     int      `json:"read"`     // filas leídas
	Imported int      `json:"imported"` // productos creados
	Skipped  int      `json:"skipped"`  // filas sin nombre
	Errors   []string `json:"errors,omitempty"`
}

package ledger

// ItemResult resultado de un vagón dentro de un lote. Err queda nil en éxito.
type ItemResult struct {
	Wagon string
	OK    bool
	Err   error
}

// BatchResult es el tipo de retorno de primera clase de las operaciones por
// lote: lote best-effort, éxito parcial esperado. Invalid trae los tokens que
// no pasaron el parser (nunca se intentaron); Items trae un resultado por
// vagón válido, en orden de entrada.
type BatchResult struct {
	Invalid []string
	Items   []ItemResult
}

// Succeeded cuenta los vagones procesados con éxito.
func (b *BatchResult) Succeeded() int {
	n := 0
	for _, it := range b.Items {
		if it.OK {
			n++
		}
	}
	return n
}

// Failed cuenta los vagones con error remoto.
func (b *BatchResult) Failed() int {
	return len(b.Items) - b.Succeeded()
}

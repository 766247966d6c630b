package lote

type Estado string

const (
	EstadoAbierto Estado = "abierto"
	EstadoCerrado Estado = "cerrado"
)

func (e Estado) String() string {
	return string(e)
}

func (e Estado) IsValid() bool {
	switch e {
	case EstadoAbierto, EstadoCerrado:
		return true
	default:
		return false
	}
}

func NewEstado(s string) (Estado, error) {
	estado := Estado(s)
	if !estado.IsValid() {
		return "", ErrEstadoInvalido
	}
	return estado, nil
}

package pedido

type MedioPago string

const (
	MedioPagoYape     MedioPago = "yape"
	MedioPagoPlin     MedioPago = "plin"
	MedioPagoEfectivo MedioPago = "efectivo"
)

func (m MedioPago) String() string {
	return string(m)
}

func (m MedioPago) IsValid() bool {
	switch m {
	case MedioPagoYape, MedioPagoPlin, MedioPagoEfectivo:
		return true
	default:
		return false
	}
}

func NewMedioPago(s string) (MedioPago, error) {
	medio := MedioPago(s)
	if !medio.IsValid() {
		return "", ErrMedioPagoInvalido
	}
	return medio, nil
}

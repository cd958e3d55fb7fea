package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/guiabeleza/salao/internal/salon"
)

var (
	ErrInvalidSignature = errors.New("assinatura do webhook inválida")
	ErrMissingOrderID   = errors.New("evento sem order_id")
)

// Event é o payload recebido da Kiwify. Só os campos usados na decisão são
// mapeados; o payload bruto fica guardado em subscription_events.
type Event struct {
	OrderID       string `json:"order_id"`
	OrderStatus   string `json:"order_status"`
	PaymentStatus string `json:"payment_status"`
	Customer      struct {
		Email string `json:"email"`
	} `json:"Customer"`
	Product struct {
		Name string `json:"product_name"`
	} `json:"Product"`
	Subscription struct {
		Plan struct {
			Name string `json:"name"`
		} `json:"plan"`
	} `json:"Subscription"`
}

// IsPaid informa se o evento representa um pagamento efetivado. Qualquer
// outra combinação (estorno, boleto gerado, recusado) é ignorada.
func (e Event) IsPaid() bool {
	return strings.EqualFold(e.PaymentStatus, "approved") && strings.EqualFold(e.OrderStatus, "paid")
}

// PlanName devolve o nome de plano mais específico presente no evento.
func (e Event) PlanName() string {
	if e.Subscription.Plan.Name != "" {
		return e.Subscription.Plan.Name
	}
	return e.Product.Name
}

// PlanFromName mapeia o nome do produto/plano da Kiwify para o plano interno
// por substring, caindo em basico quando não reconhecido.
func PlanFromName(name string) string {
	name = strings.ToLower(name)
	switch {
	case strings.Contains(name, "dourado"):
		return salon.PlanVerificadoDourado
	case strings.Contains(name, "azul"):
		return salon.PlanVerificadoAzul
	default:
		return salon.PlanBasico
	}
}

// Signature calcula o HMAC-SHA256 hex do corpo com o segredo compartilhado.
func Signature(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature compara em tempo constante a assinatura recebida com a
// esperada para o corpo.
func VerifySignature(secret string, body []byte, signature string) bool {
	expected := Signature(secret, body)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(strings.TrimSpace(signature))))
}

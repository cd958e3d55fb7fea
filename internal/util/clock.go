package util

import "time"

// Now devolve o horário atual em UTC, usado em todos os timestamps persistidos.
func Now() time.Time {
	return time.Now().UTC()
}

package service

import "fmt"

var shiftOrdinals = []string{"Primo", "Secondo", "Terzo", "Quarto", "Quinto", "Sesto"}

// ShiftOrdinalName 轮次序号的显示名，1..6 之外回退为 "Turno N"
func ShiftOrdinalName(n int) string {
	if n >= 1 && n <= len(shiftOrdinals) {
		return shiftOrdinals[n-1]
	}
	return fmt.Sprintf("Turno %d", n)
}

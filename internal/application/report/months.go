package report

// Etiquetas de mes del dashboard, tal como las consume el frontend.
var monthLabels = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Oct", "Nov", "Dez",
}

// monthLabel devuelve la etiqueta del mes 1..12; cadena vacía fuera de
// rango.
func monthLabel(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthLabels[month-1]
}

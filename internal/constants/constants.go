package constants

// Weekday numbering follows the hospital scheduling convention:
// 0 = Lunes .. 6 = Domingo.

// Registration window for the panel and the history view (local time).
const (
	PanelOpenHour  = 5  // 05:00
	PanelCloseHour = 18 // 17:59 is the last valid hour
)

// SpanishWeekdays indexes weekday names by scheduling weekday number.
var SpanishWeekdays = [7]string{
	"Lunes",
	"Martes",
	"Miércoles",
	"Jueves",
	"Viernes",
	"Sábado",
	"Domingo",
}

// Prioritarios: critical services, present on the panel every day.
var Prioritarios = []string{
	"UNIDAD DE RECIÉN NACIDOS (CUIDADOS INTERMEDIOS)",
	"UNIDAD DE RECIÉN NACIDOS (CUIDADOS INTENSIVOS)",
	"UNIDAD DE CUIDADOS INTENSIVOS",
	"UNIDAD DE CUIDADO INTENSIVO PEDIÁTRICO",
}

// SedesExternas: off-site locations, always available.
var SedesExternas = []string{
	"Cuidados Paliativos",
	"Intelectus",
}

// RondaDiaria: daily-round services per weekday.
var RondaDiaria = map[int][]string{
	0: {"Urgencias", "Salud Mental", "Trasplante de Médula"},
	1: {"Oftalmología", "Neurociencias", "Patología", "Radiología", "Hospitalización Aislamiento", "Sexto Centro", "Medicina Nuclear"},
	2: {"Urgencias", "Oncología", "Hemato-Oncología", "Gastroenterología"},
	3: {"Neumología", "Nefrología", "Cardiología", "Medicina Interna", "Neurología", "Otorrino"},
	4: {"Urgencias", "Consulta Externa", "Pediatría", "9 Piso"},
}

// ServicioSalas: ward services per weekday.
var ServicioSalas = map[int][]string{
	0: {"Hospitalización Cirugía", "Lactario", "Central de Esterilización", "SIPE"},
	2: {"Central de Esterilización", "Neurociencias", "SIPE"},
	4: {"Central de Esterilización", "SIPE"},
}

// LaboratorioClinico: clinical-lab services per weekday. Monday covers
// the full list; Tuesday only re-checks errores innatos.
var LaboratorioClinico = map[int][]string{
	0: {
		"LC - ALMACÉN", "LC - MICROBIOLOGÍA", "LC - BIOLOGÍA MOLECULAR", "LC - CITOMETRÍA DE FLUJO",
		"LC - INMUNOLOGÍA", "LC - HEMATOLOGÍA", "LC - QUÍMICA", "LC - TAMIZAJE",
		"LC - REFERENCIA Y CONTRAREFERENCIA", "LC - SERVICIO TRANSFUSIONAL", "LC - TOMA DE MUESTRAS", "LC - ERRORES INNATOS",
	},
	1: {
		"LC - ERRORES INNATOS",
	},
}

// Surgery rooms 1-14. The microscope only exists in room 1.
var SurgeryRooms = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13", "14"}

var SurgeryEquipment = []string{
	"Máquina",
	"Presión bala de oxígeno (O₂)",
	"Monitor",
	"Mesa",
	"Lámpara",
	"Electrobisturí",
	"Microscopio",
	"Otros",
}

// SurgeryAvailableDays: surgery rounds run Monday through Saturday.
var SurgeryAvailableDays = []int{0, 1, 2, 3, 4, 5}

// OncologyServices require up to three service-side signatures.
var OncologyServices = []string{"oncología", "hemato-oncología", "oncologia", "hemato-oncologia"}

// Package suggest maps free-text complaint descriptions to recommended
// corrective actions via an ordered rule list.
package suggest

import "regexp"

// Rule pairs a complaint-text pattern with a recommended corrective action.
type Rule struct {
	// Pattern is matched case-insensitively against the complaint text.
	Pattern *regexp.Regexp
	// Action is the recommended corrective action.
	Action string
}

// FallbackAction is returned when no rule matches: a generic root-cause
// analysis prompt with SMART-action guidance.
const FallbackAction = "Analizar causa raíz (Ishikawa/5 porqués); definir acción SMART con responsable y fecha; medir impacto en 30 días."

// DefaultRules returns the built-in rule list. Rules are evaluated strictly in
// this order and the first match wins, so reordering them changes behavior for
// text that matches more than one pattern.
func DefaultRules() []Rule {
	return []Rule{
		{regexp.MustCompile(`(?i)confus|confusa|confuso`), "Estandarizar guion y checklist; capacitar en comunicación clara; validar con técnica de 'retorno de información'."},
		{regexp.MustCompile(`(?i)falt(ó|o) info|incomplet`), "Diseñar lista de información mínima; agregar señalética paso a paso; supervisión de cumplimiento diario."},
		{regexp.MustCompile(`(?i)t(á|a)rd|demora|espera|cola`), "Implementar gestión de colas; priorización por hora; reforzar cajas/personal en picos; monitoreo de TME en tablero."},
		{regexp.MustCompile(`(?i)sistema lento|lento`), "Revisar desempeño del SI; plan de contingencia; ventanilla offline; escalamiento a TI con métricas."},
		{regexp.MustCompile(`(?i)no (informaron|explicaron|recib[ií]|atendieron|examin[oó])`), "Retroalimentación 1:1; reentrenar protocolo; auditoría por muestreo; reforzar cultura de servicio."},
		{regexp.MustCompile(`(?i)muy t[eé]cnico`), "Capacitar en lenguaje sencillo; plantilla de explicación; evaluar comprensión del paciente."},
		{regexp.MustCompile(`(?i)examen superficial|no examin|faltaron pruebas`), "Recordar estándar de examen físico; checklist por especialidad; doble firma en casos críticos."},
		{regexp.MustCompile(`(?i)precios altos|caro|no vale`), "Revisar política de precios y comunicación de valor; opciones de paquetes; transparencia de costos."},
		{regexp.MustCompile(`(?i)sin disponibilidad|sin rampas|barreras|acceso dif`), "Plan de accesibilidad: rampas, señalética, rutas; calendarizar correcciones con Mantenimiento."},
		{regexp.MustCompile(`(?i)ba[nñ]os|mal olor|sucio`), "Refuerzo de limpieza con rondas programadas; checklist y bitácora; responsable por turno."},
		{regexp.MustCompile(`(?i)telemedicina|virtual|tecnolog`), "Mapear flujos de telemedicina; capacitar; asegurar equipos y conectividad; protocolo de consentimiento."},
		{regexp.MustCompile(`(?i)no preguntaron|no escuch[oó]|interrump`), "Entrenamiento en escucha activa; prohibir interrupciones; guía de entrevista clínica."},
		{regexp.MustCompile(`(?i)preferencias injustas|saltaron turnos|orden`), "Sistema de turnos visible; auditoría aleatoria; sanción por alteración de cola; educación al usuario."},
	}
}

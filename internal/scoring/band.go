package scoring

// MaturityLevel is one of the three fixed maturity categories
type MaturityLevel string

const (
	LevelInicial          MaturityLevel = "INICIAL"
	LevelEmDesenvolvimento MaturityLevel = "EM_DESENVOLVIMENTO"
	LevelConsolidado      MaturityLevel = "CONSOLIDADO"
)

// MaturityBand carries the fixed display texts of a maturity category
type MaturityBand struct {
	Level          MaturityLevel `json:"level"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Recommendation string        `json:"recommendation"`
}

// Band thresholds compared against the absolute point total, not the
// percentage. The canonical questionnaire weighs 100 points in total; if the
// total weight ever changes these cutoffs must be revisited.
// #DATA_ASSUMPTION: Thresholds 40/70 taken over unchanged from the legacy report
const (
	bandInicialMax          = 40.0
	bandEmDesenvolvimentoMax = 70.0
)

var bands = map[MaturityLevel]MaturityBand{
	LevelInicial: {
		Level:       LevelInicial,
		Name:        "Inicial",
		Description: "O negócio está começando ou ainda não possui processos bem definidos.",
		Recommendation: "Priorize a criação de um planejamento estratégico básico, organize as finanças e " +
			"defina processos essenciais para o funcionamento do negócio. Considere buscar orientação " +
			"de um consultor para acelerar essa estruturação.",
	},
	LevelEmDesenvolvimento: {
		Level:       LevelEmDesenvolvimento,
		Name:        "Em Desenvolvimento",
		Description: "O negócio já possui alguns processos organizados, mas ainda enfrenta desafios.",
		Recommendation: "Foco em otimizar os processos existentes, investir em capacitação da equipe e " +
			"melhorar a gestão financeira. Avalie ferramentas que possam automatizar operações e " +
			"aumentar a eficiência.",
	},
	LevelConsolidado: {
		Level:       LevelConsolidado,
		Name:        "Consolidado",
		Description: "O negócio tem processos bem estabelecidos e está em fase de expansão.",
		Recommendation: "Concentre-se na inovação, expansão de mercado e diversificação de " +
			"produtos/serviços. Invista em estratégias de marketing e mantenha um controle financeiro " +
			"rigoroso para sustentar o crescimento.",
	},
}

// BandForScore maps a total score into its maturity band. Boundaries are
// inclusive on the lower band: exactly 40 is Inicial, exactly 70 is
// Em Desenvolvimento.
func BandForScore(totalScore float64) MaturityBand {
	switch {
	case totalScore <= bandInicialMax:
		return bands[LevelInicial]
	case totalScore <= bandEmDesenvolvimentoMax:
		return bands[LevelEmDesenvolvimento]
	default:
		return bands[LevelConsolidado]
	}
}

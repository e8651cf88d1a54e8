package wrangle

import "github.com/hazyhaar/encuesta-wrangler/pkg/survey"

// Default question headers, verbatim from the survey instrument. They are
// the lookup keys into the raw table and can be overridden per step when a
// survey export renames a question.
const (
	QuestionRelation   = "¿Cuál es tu relación con el deporte? (Elige todas las que apliquen)"
	QuestionFrequency  = "¿Con qué frecuencia ves fútbol femenino?"
	QuestionChannels   = "¿A través de qué canales sigues los partidos de fútbol femenino en vivo? (Selecciona todos los que apliquen)"
	QuestionSocial     = "¿En qué redes sociales sigues contenido de fútbol femenino? (Selecciona todas las que apliquen)"
	QuestionContent    = "¿Qué tipo de contenido consumes más? (Selecciona todas las que apliquen)"
	QuestionFollow     = "¿Sigues a equipos o jugadoras específicas en el fútbol femenino?"
	QuestionAttendance = "¿Has asistido alguna vez a un partido de fútbol femenino en vivo?"
	QuestionPerception = "¿Cómo cambia tu percepción de una marca al verla patrocinando fútbol femenino?"
	QuestionPurchase   = "¿Has comprado un producto o usado un servicio porque patrocinaba un equipo o atleta de deportes femeninos?"
	QuestionImportance = "¿Qué tan importante es para ti que las marcas apoyen el deporte femenino?"
	QuestionInvestment = "¿Crees que el fútbol femenino debería recibir la misma inversión comercial que el masculino?"
	QuestionAttitude   = "¿Apoyarías o boicotearías una marca según su apoyo al fútbol femenino?"
	QuestionSentiment  = "¿Qué sientes cuando las marcas usan a deportistas femeninas en sus campañas o anuncios?"
	QuestionGrowth     = "¿Cómo crees que crecerá el fútbol femenino en tu país en los próximos 5 años?"
	QuestionChallenges = "¿Cuál es el mayor desafío que enfrenta el fútbol femenino en tu país? (Selecciona los 2 principales)"
	QuestionMotivation = "¿Te motivaría más apoyar a un equipo si tuviera y apoyara una sección femenina?"
	QuestionBetting    = "En general, incluyendo fútbol masculino y femenino, ¿con qué frecuencia apuestas en eventos deportivos?"
	QuestionValues     = "¿Qué valores asocias con el fútbol femenino? (Selecciona al menos 2)"
	QuestionNonViewing = "¿Por qué no ves fútbol femenino actualmente? (Selecciona todas las opciones que apliquen)"
	QuestionLeagues    = "¿Conoces alguna liga o torneo de fútbol femenino?"
	QuestionRecency    = "¿Has visto algún contenido (video, noticia, post) sobre fútbol femenino en el último año?"
	QuestionNeeds      = "¿Qué necesitaría el fútbol femenino para que tú te interesaras más en verlo? (Selecciona todas las opciones que apliquen)"
	QuestionGeneral    = "¿Cómo percibes el fútbol femenino actualmente, en general?"
	QuestionProLeague  = "¿Sabías que tu país tiene una liga profesional de fútbol femenino?"
	QuestionCountry    = "¿En qué país vives actualmente?"
	QuestionAge        = "¿Cuál es tu edad?"
	QuestionGender     = "¿Con qué género te identificas?"
)

// DroppedColumns are survey-plumbing columns removed before extraction:
// form artifacts, the raffle opt-in, and the referral codes.
var DroppedColumns = []string{
	"Columna 11",
	"Columna 3",
	"¿Te gustaría participar en la rifa de un PREMIO? (Toma 1 minuto más y tu participación es completamente anónima)",
	"Ingresa tu código único que incluya:\n- 8 letras (pueden repetirse)\n- 2 números (pueden repetirse)\n- 2 símbolos especiales como: #, @, !, %, &, etc.",
	"¿Te refirió alguien para contestar esta encuesta? Ingresa su código de referido",
}

// Steps returns the full pipeline in questionnaire order. Order does not affect
// the result (each step reads only its own source column) but keeps the
// output column layout stable.
func Steps() []Step {
	return []Step{
		{Name: "non_fan", Source: QuestionFrequency, Columns: survey.NonFanColumns, Cell: survey.ExtractNonFan},
		{Name: "relacion", Source: QuestionRelation, Columns: survey.RelationColumns, Cell: survey.ExtractRelation},
		{Name: "frecuencia", Source: QuestionFrequency, Columns: survey.FrequencyColumns, Cell: survey.ExtractFrequency},
		{Name: "canales", Source: QuestionChannels, Columns: survey.ChannelColumns, Cell: survey.ExtractChannels},
		{Name: "redes", Source: QuestionSocial, Columns: survey.SocialColumns, Cell: survey.ExtractSocial},
		{Name: "contenido", Source: QuestionContent, Columns: survey.ContentColumns, Cell: survey.ExtractContent},
		{Name: "sigue", Source: QuestionFollow, Columns: survey.FollowColumns, Cell: survey.ExtractFollow},
		{Name: "asistencia", Source: QuestionAttendance, Columns: survey.AttendanceColumns, Cell: survey.ExtractAttendance},
		{Name: "percepcion_patrocinio", Source: QuestionPerception, Columns: survey.PerceptionColumns, Cell: survey.ExtractPerception},
		{Name: "compra_patrocinio", Source: QuestionPurchase, Columns: survey.PurchaseColumns, Cell: survey.ExtractPurchase},
		{Name: "importancia_marcas", Source: QuestionImportance, Columns: survey.ImportanceColumns, Cell: survey.ExtractImportance},
		{Name: "inversion_igual", Source: QuestionInvestment, Columns: survey.InvestmentColumns, Cell: survey.ExtractInvestment},
		{Name: "actitud_marca", Source: QuestionAttitude, Columns: survey.AttitudeColumns, Cell: survey.ExtractAttitude},
		{Name: "campanas_deportistas", Source: QuestionSentiment, Columns: survey.SentimentColumns, Cell: survey.ExtractSentiment},
		{Name: "crecimiento_5y", Source: QuestionGrowth, Columns: survey.GrowthColumns, Cell: survey.ExtractGrowth},
		{Name: "desafios", Source: QuestionChallenges, Columns: survey.ChallengeColumns, Cell: survey.ExtractChallenges},
		{Name: "motivacion_apoyar", Source: QuestionMotivation, Columns: survey.MotivationColumns, Cell: survey.ExtractMotivation},
		{Name: "apuestas", Source: QuestionBetting, Columns: survey.BettingColumns, Cell: survey.ExtractBetting},
		{Name: "valores", Source: QuestionValues, Columns: survey.ValueColumns, Cell: survey.ExtractValues},
		{Name: "no_ves", Source: QuestionNonViewing, Columns: survey.NonViewingColumns, Cell: survey.ExtractNonViewing},
		{Name: "conoce_ligas", Source: QuestionLeagues, Columns: survey.LeagueAwarenessColumns, Cell: survey.ExtractLeagueAwareness},
		{Name: "vio_contenido", Source: QuestionRecency, Columns: survey.ContentRecencyColumns, Cell: survey.ExtractContentRecency},
		{Name: "necesidades", Source: QuestionNeeds, Columns: survey.NeedColumns, Cell: survey.ExtractNeeds},
		{Name: "percepcion_general", Source: QuestionGeneral, Columns: survey.GeneralPerceptionColumns, Cell: survey.ExtractGeneralPerception},
		{Name: "sabia_liga", Source: QuestionProLeague, Columns: survey.ProLeagueColumns, Cell: survey.ExtractProLeague},
		{Name: "pais", Source: QuestionCountry, Columns: survey.CountryColumns, Cell: survey.ExtractCountry},
		{Name: "edad", Source: QuestionAge, Columns: survey.AgeColumns, Cell: survey.ExtractAge},
		{Name: "genero", Source: QuestionGender, Expand: survey.GenderExpand},
	}
}

package rfm

// Названия RFM-сегментов
const (
	SegmentChampions = "Champions"
	SegmentLoyal     = "Loyal Customers"
	SegmentAtRisk    = "At Risk"
	SegmentCantLose  = "Can't Lose"
	SegmentNew       = "New Customers"
	SegmentLost      = "Lost"
)

type segmentRule struct {
	label   string
	matches func(r, f, m int) bool
}

// Таблица правил сегментации. Вычисляется сверху вниз, срабатывает
// первое подошедшее правило, поэтому порядок значим.
//
// Правила "Can't Lose" и "New Customers" недостижимы: их предикат
// (R>=4) целиком покрыт стоящим выше "At Risk" (R>=3). Таблица
// сохранена в исходном порядке, менять его без уточненной методики
// нельзя.
var segmentRules = []segmentRule{
	{SegmentChampions, func(r, f, m int) bool { return r >= 4 && f >= 4 && m >= 4 }},
	{SegmentLoyal, func(r, f, m int) bool { return r >= 3 && f >= 3 && m >= 3 }},
	{SegmentAtRisk, func(r, f, m int) bool { return r >= 3 && f >= 1 && m >= 1 }},
	{SegmentCantLose, func(r, f, m int) bool { return r >= 4 && f >= 1 && m >= 1 }},
	{SegmentNew, func(r, f, m int) bool { return r >= 4 && f >= 1 && m >= 1 }},
	{SegmentLost, func(r, f, m int) bool { return true }},
}

// SegmentFor возвращает сегмент для тройки порядковых оценок (R, F, M).
// Чистая функция: одинаковые тройки всегда дают одинаковый сегмент.
func SegmentFor(r, f, m int) string {
	for _, rule := range segmentRules {
		if rule.matches(r, f, m) {
			return rule.label
		}
	}
	return SegmentLost
}

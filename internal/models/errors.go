package models

import "fmt"

// DataIntegrityError означает нарушение целостности входных данных:
// битые внешние ключи, отрицательные количества, дубликаты первичных
// ключей после очистки. Фатальна для всего запуска.
type DataIntegrityError struct {
	Table  string
	Reason string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity violation in table %q: %s", e.Table, e.Reason)
}

// DegenerateInputError означает, что стадии не хватает различимых
// значений или объема выборки (квантильное разбиение, кластеризация)
type DegenerateInputError struct {
	Stage  string
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("degenerate input at stage %q: %s", e.Stage, e.Reason)
}

// SingleClassLabelError означает, что целевая метка содержит только один
// класс: стратифицированное разбиение и AUC не определены
type SingleClassLabelError struct {
	Class int
}

func (e *SingleClassLabelError) Error() string {
	return fmt.Sprintf("churn label contains a single class (%d): stratified split and AUC are undefined", e.Class)
}

// MissingFeatureError означает, что при скоринге отсутствует признак,
// который ожидает ранее обученный скейлер. Подстановка нуля запрещена.
type MissingFeatureError struct {
	Feature string
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf("feature %q expected by the fitted scaler is missing from scoring data", e.Feature)
}

package port

// CriteriaValidatorPort проверяет сырые критерии сохраненного поиска
// по контрактной JSON-схеме до того, как они попадут в домен.
type CriteriaValidatorPort interface {
	Validate(raw []byte) error
}

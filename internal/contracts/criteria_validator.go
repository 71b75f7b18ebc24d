package contracts

const searchCriteriaSchemaKey = "SearchCriteria/1.0.0"

// CriteriaValidator проверяет сырые критерии сохраненного поиска
// по контрактной схеме. Реализует port.CriteriaValidatorPort.
type CriteriaValidator struct{}

func NewCriteriaValidator() *CriteriaValidator {
	return &CriteriaValidator{}
}

func (v *CriteriaValidator) Validate(raw []byte) error {
	return Validate(searchCriteriaSchemaKey, raw)
}

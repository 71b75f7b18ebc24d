package contracts

import "testing"

func TestGenerateKeyFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"schemas/search-criteria/v1.json", "SearchCriteria/1.0.0"},
		{"schemas/some-other-contract/v2.json", "SomeOtherContract/2.0.0"},
		{"schemas/malformed.json", ""},
	}

	for _, tt := range tests {
		if got := generateKeyFromPath(tt.path); got != tt.want {
			t.Errorf("generateKeyFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestCriteriaValidator(t *testing.T) {
	t.Parallel()

	validator := NewCriteriaValidator()

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "full valid criteria",
			body: `{"city":"Pune","locality":"Baner","property_type":"apartment","listing_type":"rent","min_price":10000,"max_price":35000,"bedrooms":2}`,
		},
		{
			name: "empty criteria object is allowed",
			body: `{}`,
		},
		{
			name:    "unknown key is rejected",
			body:    `{"city":"Pune","pets_allowed":true}`,
			wantErr: true,
		},
		{
			name:    "unknown property type",
			body:    `{"property_type":"castle"}`,
			wantErr: true,
		},
		{
			name:    "negative price",
			body:    `{"min_price":-1}`,
			wantErr: true,
		},
		{
			name:    "fractional bedrooms",
			body:    `{"bedrooms":2.5}`,
			wantErr: true,
		},
		{
			name:    "not a JSON object",
			body:    `"just a string"`,
			wantErr: true,
		},
		{
			name:    "broken JSON",
			body:    `{"city":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validator.Validate([]byte(tt.body))
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%s) error = %v, wantErr %t", tt.body, err, tt.wantErr)
			}
		})
	}
}

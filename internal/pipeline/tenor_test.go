package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTenorInYears(t *testing.T) {
	tests := []struct {
		name        string
		offerDate   string
		fixedPeriod string
		want        string
	}{
		{"german dates ten years", "01.05.2026", "01.05.2036", "10 Jahre"},
		{"iso dates", "2026-05-01", "2033-05-01", "7 Jahre"},
		{"slash dates", "01/05/2026", "01/05/2031", "5 Jahre"},
		{"mixed layouts", "2026-05-01", "01.05.2036", "10 Jahre"},
		{"partial year rounds down", "15.06.2026", "14.06.2036", "9 Jahre"},
		{"same day boundary", "15.06.2026", "15.06.2036", "10 Jahre"},
		{"textual tenor passes through", "01.05.2026", "10 Jahre", "10 Jahre"},
		{"arbitrary text passes through", "01.05.2026", "fix für die gesamte Laufzeit", "fix für die gesamte Laufzeit"},
		{"empty period", "01.05.2026", "", ""},
		{"whitespace period", "01.05.2026", "   ", ""},
		{"period date without offer date", "", "01.05.2036", ""},
		{"unparseable offer date", "sometime", "01.05.2036", ""},
		{"negative difference", "01.05.2036", "01.05.2026", ""},
		{"beyond fifty years", "01.05.2026", "01.05.2090", ""},
		{"exactly fifty years", "01.05.2026", "01.05.2076", "50 Jahre"},
		{"zero years", "01.05.2026", "01.06.2026", "0 Jahre"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tenorInYears(tt.offerDate, tt.fixedPeriod))
		})
	}
}

package ingesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSheetName(t *testing.T) {
	tests := []struct {
		name         string
		sheetName    string
		expectedDate string
		expectedSeq  int
		expectErr    bool
	}{
		{
			name:         "plain date",
			sheetName:    "价格表4月2号",
			expectedDate: "2025-04-02",
			expectedSeq:  1,
		},
		{
			name:         "full-width parenthesized count",
			sheetName:    "价格表4月2号（2）",
			expectedDate: "2025-04-02",
			expectedSeq:  2,
		},
		{
			name:         "ascii parenthesized count",
			sheetName:    "价格表12月31号(3)",
			expectedDate: "2025-12-31",
			expectedSeq:  3,
		},
		{
			name:      "arbitrary name",
			sheetName: "随便写的名字",
			expectErr: true,
		},
		{
			name:      "month out of range",
			sheetName: "价格表13月2号",
			expectErr: true,
		},
		{
			name:      "empty",
			sheetName: "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := parseSheetName(tt.sheetName, 2025)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedDate, meta.AdjustmentDate)
			assert.Equal(t, tt.expectedSeq, meta.AdjustmentCount)
		})
	}
}

func TestParseSheetRows(t *testing.T) {
	meta := sheetMeta{AdjustmentDate: "2025-04-02", AdjustmentCount: 1}

	header := []string{"类别", "品名", "规格", "", "", "", "", "原价", "现价"}

	t.Run("valid row with previous price", func(t *testing.T) {
		rows := [][]string{
			header,
			{"产成品", "香肠", "500g", "", "", "", "", "10000", "10500"},
		}

		adjustments := parseSheetRows(rows, meta)
		require.Len(t, adjustments, 1)

		adj := adjustments[0]
		assert.Equal(t, "2025-04-02", adj.AdjustmentDate)
		assert.Equal(t, "香肠", adj.ProductName)
		assert.Equal(t, 1, adj.AdjustmentCount)
		assert.Equal(t, 10500.0, adj.CurrentPrice)
		assert.Equal(t, 500.0, adj.PriceDifference)
		require.NotNil(t, adj.PreviousPrice)
		assert.Equal(t, 10000.0, *adj.PreviousPrice)
		require.NotNil(t, adj.Category)
		assert.Equal(t, "产成品", *adj.Category)
		require.NotNil(t, adj.Specification)
		assert.Equal(t, "500g", *adj.Specification)
	})

	t.Run("missing previous price leaves difference zero", func(t *testing.T) {
		rows := [][]string{
			header,
			{"产成品", "火腿", "", "", "", "", "", "", "9800"},
		}

		adjustments := parseSheetRows(rows, meta)
		require.Len(t, adjustments, 1)

		assert.Nil(t, adjustments[0].PreviousPrice)
		assert.Equal(t, 0.0, adjustments[0].PriceDifference)
		assert.Nil(t, adjustments[0].Specification)
	})

	t.Run("skip rules", func(t *testing.T) {
		rows := [][]string{
			header,
			{"产成品", "均价", "", "", "", "", "", "100", "200"},
			{"产成品", "品名", "", "", "", "", "", "100", "200"},
			{"产成品", "", "", "", "", "", "", "100", "200"},
			{"产成品", "香肠", "", "", "", "", "", "100", "0"},
			{"产成品", "火腿", "", "", "", "", "", "100", "abc"},
			{"产成品", "腊肉", "", "", "", "", "", "100"},
		}

		adjustments := parseSheetRows(rows, meta)
		assert.Empty(t, adjustments)
	})

	t.Run("all three templates parsed", func(t *testing.T) {
		row := make([]string, 27)
		row[1], row[8] = "香肠", "10500"
		row[10], row[17] = "火腿", "9800"
		row[19], row[26] = "腊肉", "12000"

		adjustments := parseSheetRows([][]string{header, row}, meta)
		require.Len(t, adjustments, 3)

		assert.Equal(t, "香肠", adjustments[0].ProductName)
		assert.Equal(t, "火腿", adjustments[1].ProductName)
		assert.Equal(t, "腊肉", adjustments[2].ProductName)
	})

	t.Run("decimal prices keep cent precision", func(t *testing.T) {
		rows := [][]string{
			header,
			{"产成品", "香肠", "", "", "", "", "", "10.10", "10.40"},
		}

		adjustments := parseSheetRows(rows, meta)
		require.Len(t, adjustments, 1)
		assert.Equal(t, 0.3, adjustments[0].PriceDifference)
	})
}

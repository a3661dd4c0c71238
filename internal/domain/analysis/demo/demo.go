// Package demo supplies sample statements for the demo endpoint and for
// exercising the engine in tests and benchmarks without real bank data.
package demo

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// Statement is the canonical fixed demo export. Kept byte-stable so the demo
// response is deterministic across deploys.
const Statement = `date,description,amount
2026-01-01,STARBUCKS,-190
2026-01-01,GRAB RIDE,-240
2026-01-02,NETFLIX,-549
2026-01-03,SALARY,45000
2026-01-03,SHOPEE,-1299
2026-01-10,MERALCO BILL,-2150
2026-01-15,NETFLIX,-549
2026-01-18,FOODPANDA,-420
2026-01-18,FOODPANDA,-390
2026-01-20,SM SUPERMARKET,-2380`

// statementRow is the CSV shape of a generated line.
type statementRow struct {
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
}

// merchantPool are description templates the generator draws from, chosen so
// generated statements hit every spending category.
var merchantPool = []string{
	"STARBUCKS %d", "JOLLIBEE %d", "FOODPANDA", "GRAB RIDE", "ANGKAS",
	"SHELL GAS STATION", "MERALCO BILL", "PLDT INTERNET", "GLOBE BILL",
	"SHOPEE", "LAZADA", "SM SUPERMARKET", "SAVEMORE GROCERY",
	"NETFLIX", "SPOTIFY", "STEAM", "MERCURY PHARMACY", "ST LUKES CLINIC",
}

// Random generates a synthetic statement of n spending rows plus one salary
// credit, spread over the 90 days before now. The same seed always produces
// the same statement.
func Random(n int, seed uint64) (string, error) {
	if n < 1 {
		n = 1
	}
	faker := gofakeit.New(int64(seed))
	now := time.Now().UTC()

	rows := make([]statementRow, 0, n+1)
	rows = append(rows, statementRow{
		Date:        now.AddDate(0, 0, -faker.Number(60, 90)).Format("2006-01-02"),
		Description: "SALARY",
		Amount:      "45000.00",
	})
	for i := 0; i < n; i++ {
		merchant := merchantPool[faker.Number(0, len(merchantPool)-1)]
		if len(merchant) > 2 && merchant[len(merchant)-2:] == "%d" {
			merchant = fmt.Sprintf(merchant, faker.Number(100, 999))
		}
		amount := decimal.NewFromFloat(faker.Price(50, 5000)).Round(2).Neg()
		rows = append(rows, statementRow{
			Date:        now.AddDate(0, 0, -faker.Number(0, 90)).Format("2006-01-02"),
			Description: merchant,
			Amount:      amount.String(),
		})
	}

	csvText, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("failed to marshal sample statement: %w", err)
	}
	return csvText, nil
}

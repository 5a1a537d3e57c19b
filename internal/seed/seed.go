// Package seed holds the demo data set loaded by `salesctl seed`.
package seed

import (
	"time"

	"salesanalytics/internal/model"
)

// SourceFile tags records created by the seeder
const SourceFile = "seed"

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Records returns a fresh copy of the demo sales rows
func Records() []model.SalesRecord {
	return []model.SalesRecord{
		{Product: "Laptop", Category: "Electronics", Amount: 1000, Quantity: 50, Total: 50000, Date: day(2024, time.January, 31), Region: "North", SourceFile: SourceFile},
		{Product: "Smartphone", Category: "Electronics", Amount: 700, Quantity: 120, Total: 84000, Date: day(2024, time.February, 29), Region: "South", SourceFile: SourceFile},
		{Product: "Headphones", Category: "Accessories", Amount: 100, Quantity: 200, Total: 20000, Date: day(2024, time.March, 31), Region: "East", SourceFile: SourceFile},
		{Product: "Tablet", Category: "Electronics", Amount: 500, Quantity: 80, Total: 40000, Date: day(2024, time.April, 30), Region: "West", SourceFile: SourceFile},
		{Product: "Monitor", Category: "Electronics", Amount: 300, Quantity: 60, Total: 18000, Date: day(2024, time.May, 31), Region: "North", SourceFile: SourceFile},
		{Product: "Keyboard", Category: "Accessories", Amount: 50, Quantity: 150, Total: 7500, Date: day(2024, time.June, 30), Region: "South", SourceFile: SourceFile},
		{Product: "Mouse", Category: "Accessories", Amount: 30, Quantity: 180, Total: 5400, Date: day(2024, time.July, 31), Region: "East", SourceFile: SourceFile},
		{Product: "Smartwatch", Category: "Wearables", Amount: 200, Quantity: 90, Total: 18000, Date: day(2024, time.August, 31), Region: "West", SourceFile: SourceFile},
	}
}

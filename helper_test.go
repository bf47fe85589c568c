package stockroom

import "github.com/etnz/stockroom/date"

// Fixtures shared across the package tests.

func phone() *Electronics { return NewElectronics("E1", "Phone", P(500.0), 10, "Acme", 2) }

func shirt() *Clothing { return NewClothing("C1", "Shirt", P(25.0), 15, "M", "Cotton") }

func milk(expiry date.Date) *Grocery { return NewGrocery("G1", "Milk", P(2.5), 20, expiry) }

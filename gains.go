package stockdash

import (
	"fmt"
	"sort"
	"time"
)

// FiscalYearCutover is the day on which a new fiscal year begins. A Sell dated
// on or after the cut-over belongs to the fiscal year starting that calendar
// year; earlier Sells belong to the fiscal year started the previous year.
type FiscalYearCutover struct {
	Month time.Month
	Day   int
}

// UKFiscalYear is the default cut-over: the UK tax year starts on 6 April.
var UKFiscalYear = FiscalYearCutover{Month: time.April, Day: 6}

// Label returns the fiscal year containing d, formatted as the two consecutive
// years joined, e.g. "2024/25" for a date between 2024-04-06 and 2025-04-05
// under the UK cut-over.
func (c FiscalYearCutover) Label(d Date) string {
	start := d.Year()
	if d.Month() < c.Month || (d.Month() == c.Month && d.Day() < c.Day) {
		start--
	}
	return fmt.Sprintf("%d/%02d", start, (start+1)%100)
}

// FiscalYearGain aggregates realised capital gains across all symbols for one
// fiscal year.
type FiscalYearGain struct {
	FiscalYear     string
	SellCount      int
	TotalProceeds  Money
	TotalCostBasis Money
	RealisedPnl    Money
}

// ComputeRealisedGainsByFiscalYear computes tax-oriented realised gains using
// chronological (FIFO) lot consumption, independently per symbol, and buckets
// each Sell into the fiscal year containing its date.
//
// This is deliberately a separate algorithm from ComputeHolding's running
// average: the average-cost figure is the stable display P&L, while FIFO lot
// consumption is the conventional tax treatment. The two never share lot
// state.
//
// SellCount counts Sell events, not lots consumed. Fiscal years are returned
// newest first; years without any Sell are omitted.
func ComputeRealisedGainsByFiscalYear(txsBySymbol map[string][]Transaction, cutover FiscalYearCutover) ([]FiscalYearGain, error) {
	byYear := make(map[string]*FiscalYearGain)

	for symbol, txs := range txsBySymbol {
		for _, tx := range txs {
			if err := tx.Validate(); err != nil {
				return nil, fmt.Errorf("fiscal year gains for %s: %w", symbol, err)
			}
		}

		var open lots
		for _, tx := range sortedForReplay(txs) {
			switch tx.Type {
			case Buy:
				open = append(open, lot{Date: tx.Date, Quantity: tx.Shares, Cost: tx.Amount()})
			case Sell:
				var costBasis Money
				costBasis, open = open.consume(tx.Shares)
				proceeds := tx.Amount()

				label := cutover.Label(tx.Date)
				fy, ok := byYear[label]
				if !ok {
					fy = &FiscalYearGain{
						FiscalYear:     label,
						TotalProceeds:  USD(0),
						TotalCostBasis: USD(0),
						RealisedPnl:    USD(0),
					}
					byYear[label] = fy
				}
				fy.SellCount++
				fy.TotalProceeds = fy.TotalProceeds.Add(proceeds)
				fy.TotalCostBasis = fy.TotalCostBasis.Add(costBasis)
				fy.RealisedPnl = fy.RealisedPnl.Add(proceeds.Sub(costBasis))
			}
		}
	}

	years := make([]FiscalYearGain, 0, len(byYear))
	for _, fy := range byYear {
		years = append(years, *fy)
	}
	sort.Slice(years, func(i, j int) bool {
		return years[i].FiscalYear > years[j].FiscalYear
	})
	return years, nil
}

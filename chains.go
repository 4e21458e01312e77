package stockdash

import "sort"

// rollWindowDays is how many days after a rolled leg's close date the
// replacement leg may open and still count as the same chain. The linkage is
// a heuristic over independently stored records with no foreign key between
// the closed and reopened legs; the window keeps unrelated re-entries out.
const rollWindowDays = 5

// RollChain is an ordered run of option legs linked by rolls: each
// non-terminal leg has status Rolled and the next leg opened on or shortly
// after its close date. Legs[0] is the head; display consumers show the
// head's cumulative figures and keep the later legs inspectable as sub-rows.
// A position with no roll relationship is its own one-element chain.
type RollChain struct {
	Legs              []OptionPosition
	CumulativePremium Money
	CumulativeProfit  Money
}

// Head returns the first leg of the chain.
func (c RollChain) Head() OptionPosition { return c.Legs[0] }

// chainKey groups candidate legs: rolls never cross ticker or strategy.
type chainKey struct {
	ticker   string
	strategy StrategyType
}

// InferRollChains links option positions into roll chains.
//
// Positions are grouped by (ticker, strategy) and sorted by opened date
// ascending, ties broken by close date. Walking the sorted group, a leg with
// status Rolled and a close date is continued by the earliest-opened unused
// candidate with the same call/put side whose opened date falls between the
// close date and rollWindowDays after it. The earliest-opened rule is the
// deterministic tie-break when several positions could plausibly continue a
// roll; it can misattribute chains on noisy data, which is accepted.
//
// Every position lands in exactly one chain. Each chain carries cumulative
// premium (Σ premium × qty × 100) and cumulative profit (open legs count as
// zero) across all its legs. Chains are returned ordered by head opened date.
func InferRollChains(options []OptionPosition) []RollChain {
	groups := make(map[chainKey][]OptionPosition)
	for _, o := range options {
		k := chainKey{ticker: o.Ticker, strategy: o.Strategy}
		groups[k] = append(groups[k], o)
	}

	keys := make([]chainKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ticker != keys[j].ticker {
			return keys[i].ticker < keys[j].ticker
		}
		return keys[i].strategy < keys[j].strategy
	})

	var chains []RollChain
	for _, k := range keys {
		chains = append(chains, chainGroup(groups[k])...)
	}
	sort.SliceStable(chains, func(i, j int) bool {
		return chains[i].Head().Opened.Before(chains[j].Head().Opened)
	})
	return chains
}

// chainGroup builds the chains of one (ticker, strategy) group.
func chainGroup(group []OptionPosition) []RollChain {
	sorted := make([]OptionPosition, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Opened.Before(sorted[j].Opened) && !sorted[j].Opened.Before(sorted[i].Opened) {
			return closeOrZero(sorted[i]).Before(closeOrZero(sorted[j]))
		}
		return sorted[i].Opened.Before(sorted[j].Opened)
	})

	used := make([]bool, len(sorted))
	var chains []RollChain

	for i := range sorted {
		if used[i] {
			continue
		}
		used[i] = true
		legs := []OptionPosition{sorted[i]}
		current := sorted[i]

		for current.Status == StatusRolled && current.CloseDate != nil {
			next := -1
			for j := range sorted {
				if used[j] || sorted[j].CallPut != current.CallPut {
					continue
				}
				gap := sorted[j].Opened.Sub(*current.CloseDate)
				if gap < 0 || gap > rollWindowDays {
					continue
				}
				// sorted order makes the first hit the earliest-opened.
				next = j
				break
			}
			if next < 0 {
				break
			}
			used[next] = true
			legs = append(legs, sorted[next])
			current = sorted[next]
		}

		chains = append(chains, summarise(legs))
	}
	return chains
}

func closeOrZero(o OptionPosition) Date {
	if o.CloseDate == nil {
		return Date{}
	}
	return *o.CloseDate
}

// summarise attaches the cumulative premium and profit of all legs.
func summarise(legs []OptionPosition) RollChain {
	premium := USD(0)
	profit := USD(0)
	for i := range legs {
		premium = premium.Add(legs[i].GrossPremium())
		if p, ok := legs[i].Profit(); ok {
			profit = profit.Add(p)
		}
	}
	return RollChain{Legs: legs, CumulativePremium: premium, CumulativeProfit: profit}
}

// OptionsRow is one row of the chain-aware options table. A multi-leg chain
// contributes a head row with cumulative figures and its later legs as
// SubRows; a singleton contributes a plain row with no cumulatives.
type OptionsRow struct {
	Option            OptionPosition
	ChainHead         bool
	ChainLength       int
	CumulativePremium *Money
	CumulativeProfit  *Money
	SubRows           []OptionsRow
}

// BuildOptionsRows flattens the inferred chains into display rows, ordered by
// head opened date.
func BuildOptionsRows(options []OptionPosition) []OptionsRow {
	chains := InferRollChains(options)
	rows := make([]OptionsRow, 0, len(chains))
	for _, c := range chains {
		if len(c.Legs) == 1 {
			rows = append(rows, OptionsRow{Option: c.Legs[0]})
			continue
		}
		premium, profit := c.CumulativePremium, c.CumulativeProfit
		head := OptionsRow{
			Option:            c.Head(),
			ChainHead:         true,
			ChainLength:       len(c.Legs),
			CumulativePremium: &premium,
			CumulativeProfit:  &profit,
		}
		for _, leg := range c.Legs[1:] {
			head.SubRows = append(head.SubRows, OptionsRow{Option: leg})
		}
		rows = append(rows, head)
	}
	return rows
}

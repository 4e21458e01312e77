package stockdash

import "testing"

// rolledLeg builds one leg of a roll chain for ticker X.
func rolledLeg(t *testing.T, opened, closed string, status OptionStatus, premium float64) OptionPosition {
	t.Helper()
	o := OptionPosition{
		Ticker:   "X",
		Strategy: Wheel,
		CallPut:  Put,
		Qty:      Q(1),
		Strike:   USD(100),
		Premium:  USD(premium),
		Opened:   day(t, opened),
		Status:   status,
	}
	if closed != "" {
		d := day(t, closed)
		o.CloseDate = &d
	}
	return o
}

func TestInferRollChains_ThreeLegs(t *testing.T) {
	a := rolledLeg(t, "2024-01-05", "2024-02-01", StatusRolled, 3.00)
	b := rolledLeg(t, "2024-02-01", "2024-03-01", StatusRolled, 2.50)
	c := rolledLeg(t, "2024-03-03", "", StatusOpen, 2.00)

	chains := InferRollChains([]OptionPosition{c, a, b}) // input order must not matter
	if len(chains) != 1 {
		t.Fatalf("got %d chains, want 1", len(chains))
	}

	chain := chains[0]
	if len(chain.Legs) != 3 {
		t.Fatalf("got %d legs, want 3", len(chain.Legs))
	}
	if !chain.Head().Opened.Equal(a.Opened) {
		t.Errorf("head opened %s, want first leg %s", chain.Head().Opened, a.Opened)
	}
	checkMoney(t, "CumulativePremium", chain.CumulativePremium, USD(750)) // (3.00 + 2.50 + 2.00) × 100
}

func TestInferRollChains_WindowExcludesLateReentry(t *testing.T) {
	a := rolledLeg(t, "2024-01-05", "2024-02-01", StatusRolled, 3.00)
	late := rolledLeg(t, "2024-02-20", "", StatusOpen, 2.00) // 19 days after close

	chains := InferRollChains([]OptionPosition{a, late})
	if len(chains) != 2 {
		t.Fatalf("got %d chains, want 2 singletons", len(chains))
	}
	for _, c := range chains {
		if len(c.Legs) != 1 {
			t.Errorf("chain starting %s has %d legs, want 1", c.Head().Opened, len(c.Legs))
		}
	}
}

func TestInferRollChains_SideAndGroupIsolation(t *testing.T) {
	a := rolledLeg(t, "2024-01-05", "2024-02-01", StatusRolled, 3.00)

	call := rolledLeg(t, "2024-02-02", "", StatusOpen, 2.00)
	call.CallPut = Call // same window, wrong side

	otherTicker := rolledLeg(t, "2024-02-02", "", StatusOpen, 2.00)
	otherTicker.Ticker = "Y"

	chains := InferRollChains([]OptionPosition{a, call, otherTicker})
	if len(chains) != 3 {
		t.Fatalf("got %d chains, want 3 singletons", len(chains))
	}
}

func TestInferRollChains_EarliestCandidateWins(t *testing.T) {
	a := rolledLeg(t, "2024-01-05", "2024-02-01", StatusRolled, 3.00)
	early := rolledLeg(t, "2024-02-02", "", StatusOpen, 2.00)
	later := rolledLeg(t, "2024-02-04", "", StatusOpen, 1.50)

	chains := InferRollChains([]OptionPosition{later, early, a})
	if len(chains) != 2 {
		t.Fatalf("got %d chains, want 2", len(chains))
	}
	// The chain picked the earliest-opened continuation; the later candidate
	// stayed a singleton.
	var linked RollChain
	for _, c := range chains {
		if len(c.Legs) == 2 {
			linked = c
		}
	}
	if len(linked.Legs) != 2 {
		t.Fatal("no 2-leg chain found")
	}
	if !linked.Legs[1].Opened.Equal(early.Opened) {
		t.Errorf("chain continued with %s, want earliest candidate %s", linked.Legs[1].Opened, early.Opened)
	}
}

func TestInferRollChains_CumulativeProfitSkipsOpenLegs(t *testing.T) {
	a := rolledLeg(t, "2024-01-05", "2024-02-01", StatusRolled, 3.00)
	closeA := USD(1.00)
	a.ClosePremium = &closeA

	b := rolledLeg(t, "2024-02-01", "", StatusOpen, 2.50)

	chains := InferRollChains([]OptionPosition{a, b})
	if len(chains) != 1 {
		t.Fatalf("got %d chains, want 1", len(chains))
	}
	// Only the closed leg contributes: (3.00 − 1.00) × 100.
	checkMoney(t, "CumulativeProfit", chains[0].CumulativeProfit, USD(200))
}

func TestBuildOptionsRows(t *testing.T) {
	a := rolledLeg(t, "2024-01-05", "2024-02-01", StatusRolled, 3.00)
	b := rolledLeg(t, "2024-02-01", "", StatusOpen, 2.50)
	solo := rolledLeg(t, "2024-05-01", "", StatusOpen, 1.00)
	solo.Ticker = "Y"

	rows := BuildOptionsRows([]OptionPosition{solo, b, a})
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	head := rows[0]
	if !head.ChainHead || head.ChainLength != 2 {
		t.Fatalf("first row is not a 2-leg chain head: %+v", head)
	}
	if head.CumulativePremium == nil {
		t.Fatal("chain head has no cumulative premium")
	}
	checkMoney(t, "CumulativePremium", *head.CumulativePremium, USD(550))
	if len(head.SubRows) != 1 {
		t.Fatalf("got %d sub-rows, want 1", len(head.SubRows))
	}
	if !head.SubRows[0].Option.Opened.Equal(b.Opened) {
		t.Errorf("sub-row opened %s, want %s", head.SubRows[0].Option.Opened, b.Opened)
	}

	single := rows[1]
	if single.ChainHead || single.CumulativePremium != nil || len(single.SubRows) != 0 {
		t.Errorf("singleton row carries chain figures: %+v", single)
	}
}

package stockdash

// lot is a single dated purchase of a symbol, used only by the FIFO
// realised-gains calculation. Lots are owned by one computation and are never
// shared with the average-cost path.
type lot struct {
	Date     Date
	Quantity Quantity
	Cost     Money // total cost of the lot (quantity × price)
}

type lots []lot

// consume removes quantityToSell shares from the oldest lots first and returns
// the cost basis of what was actually consumed together with the surviving
// lots. When the open lots hold fewer shares than requested, consume takes
// everything available and ignores the shortfall: the realised gain is then
// computed against less cost basis than the nominal share count, which is the
// deliberate tolerance for records missing their originating Buy.
func (l lots) consume(quantityToSell Quantity) (costBasis Money, remaining lots) {
	costBasis = USD(0)
	for i, current := range l {
		if quantityToSell.IsZero() {
			remaining = append(remaining, l[i:]...)
			return costBasis, remaining
		}
		if current.Quantity.GreaterThan(quantityToSell) {
			// Partial sale from this lot.
			costOfSoldPortion := current.Cost.Mul(quantityToSell).Div(current.Quantity)
			costBasis = costBasis.Add(costOfSoldPortion)
			remaining = append(remaining, lot{
				Date:     current.Date,
				Quantity: current.Quantity.Sub(quantityToSell),
				Cost:     current.Cost.Sub(costOfSoldPortion),
			})
			quantityToSell = Q(0)
		} else {
			// Full sale of this lot.
			costBasis = costBasis.Add(current.Cost)
			quantityToSell = quantityToSell.Sub(current.Quantity)
		}
	}
	return costBasis, remaining
}

package portfolio

import "slices"

// activeHoldingEpsilon separates a real residual position from the dust
// left behind by fractional arithmetic.
const activeHoldingEpsilon = 0.0001

// Holding is the aggregated position in one instrument.
type Holding struct {
	Symbol       string
	Quantity     Quantity
	AverageCost  Money // weighted average purchase price per unit
	CurrentPrice Money
}

// MarketValue returns the position valued at the current price.
func (h Holding) MarketValue() Money { return h.CurrentPrice.Mul(h.Quantity) }

// CostBasis returns the position valued at its average cost.
func (h Holding) CostBasis() Money { return h.AverageCost.Mul(h.Quantity) }

// Return returns the unrealized gain of the position relative to its cost
// basis, or zero when the basis is zero.
func (h Holding) Return() Percent {
	basis := h.CostBasis()
	if !basis.IsPositive() {
		return 0
	}
	return Percent(h.MarketValue().Sub(basis).Ratio(basis) * 100)
}

// Summary aggregates the portfolio into its headline figures.
//
// TotalInvested is the net external capital: cash that entered the
// portfolio from outside, as opposed to sale proceeds recycled into new
// purchases. CurrentValue is StockValue plus CashBalance, and
// TotalProfit is CurrentValue minus TotalInvested.
type Summary struct {
	TotalInvested Money
	CashBalance   Money
	StockValue    Money
	CurrentValue  Money
	TotalProfit   Money
	ReturnRate    Percent
}

// Snapshot is the full state of the portfolio at valuation time: the
// active holdings plus the summary figures.
//
// A Snapshot is recomputed from scratch on every call to NewSnapshot;
// there is no incremental state to corrupt.
type Snapshot struct {
	Holdings []Holding
	Summary  Summary
}

// Holding returns the active holding for a symbol, if any.
func (s *Snapshot) Holding(symbol string) (Holding, bool) {
	symbol = NormalizeSymbol(symbol)
	for _, h := range s.Holdings {
		if h.Symbol == symbol {
			return h, true
		}
	}
	return Holding{}, false
}

// cashAccount tracks the two running cash figures of the fold: net
// external capital and the internal cash balance fed by sale proceeds.
type cashAccount struct {
	invested Money
	cash     Money
}

// fund pays for a purchase, drawing on the internal cash balance first.
// Only the shortfall counts as new external capital.
func (a *cashAccount) fund(cost Money) {
	if a.cash.GreaterThanOrEqual(cost) {
		a.cash = a.cash.Sub(cost)
		return
	}
	a.invested = a.invested.Add(cost.Sub(a.cash))
	a.cash = M(0)
}

// credit adds sale proceeds to the internal cash balance.
func (a *cashAccount) credit(proceeds Money) {
	a.cash = a.cash.Add(proceeds)
}

// position is the per-symbol accumulator of the fold.
type position struct {
	quantity     Quantity
	averageCost  Money
	currentPrice Money
}

// buy merges a purchase into the weighted average cost.
func (p *position) buy(quantity Quantity, price Money) {
	total := p.quantity.Add(quantity)
	if total.IsPositive() {
		cost := p.averageCost.Mul(p.quantity).Add(price.Mul(quantity))
		p.averageCost = cost.Div(total)
	}
	p.quantity = total
}

// sell reduces the position, clamping at zero. The average cost is not
// touched; selling realizes a gain, it does not change what the
// remaining units cost.
func (p *position) sell(quantity Quantity) {
	p.quantity = p.quantity.Sub(quantity)
	if p.quantity.IsNegative() {
		p.quantity = Q(0)
	}
}

// NewSnapshot computes the current portfolio state from the raw
// transaction log and a table of current prices.
//
// Transactions are folded in chronological order; same-day entries keep
// the relative order they have in txs. The fold is total: it never
// rejects a transaction, however inconsistent. Overselling clamps the
// position at zero (proceeds are still credited in full), and a symbol
// with no known price is valued at its first recorded transaction price.
func NewSnapshot(txs []Transaction, prices PriceMap) *Snapshot {
	sorted := slices.Clone(txs)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		return a.Date.Compare(b.Date)
	})

	var account cashAccount
	positions := make(map[string]*position)
	var order []string // first-seen symbol order

	for _, t := range sorted {
		p, ok := positions[t.Symbol]
		if !ok {
			price, known := prices.Get(t.Symbol)
			if !known {
				price = t.Price
			}
			p = &position{currentPrice: price}
			positions[t.Symbol] = p
			order = append(order, t.Symbol)
		}
		switch t.Side {
		case Buy:
			account.fund(t.Cost())
			p.buy(t.Quantity, t.Price)
		case Sell:
			account.credit(t.Cost())
			p.sell(t.Quantity)
		}
	}

	s := &Snapshot{}
	stockValue := M(0)
	for _, symbol := range order {
		p := positions[symbol]
		if p.quantity.AsFloat() <= activeHoldingEpsilon {
			continue
		}
		h := Holding{
			Symbol:       symbol,
			Quantity:     p.quantity,
			AverageCost:  p.averageCost,
			CurrentPrice: p.currentPrice,
		}
		s.Holdings = append(s.Holdings, h)
		stockValue = stockValue.Add(h.MarketValue())
	}

	currentValue := stockValue.Add(account.cash)
	profit := currentValue.Sub(account.invested)
	var rate Percent
	if account.invested.IsPositive() {
		rate = Percent(profit.Ratio(account.invested) * 100)
	}
	s.Summary = Summary{
		TotalInvested: account.invested,
		CashBalance:   account.cash,
		StockValue:    stockValue,
		CurrentValue:  currentValue,
		TotalProfit:   profit,
		ReturnRate:    rate,
	}
	return s
}

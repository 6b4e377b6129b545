// Order book — pending supplier orders and their transit countdown.
package sim

// ScheduleOrder appends a paid order to the pending list. Payment has
// already been deducted by the negotiation step; the book only tracks
// transit.
func (g *GameState) ScheduleOrder(o *Order) {
	g.PendingOrders = append(g.PendingOrders, o)
}

// AdvanceAndCollect advances every pending order by one transit day.
// Orders whose countdown reaches zero are removed, credited to stock,
// and returned in insertion order. Each order is delivered exactly once.
func (g *GameState) AdvanceAndCollect() []*Order {
	var delivered []*Order
	remaining := g.PendingOrders[:0]

	for _, o := range g.PendingOrders {
		o.DaysRemaining--
		if o.DaysRemaining > 0 {
			remaining = append(remaining, o)
			continue
		}
		if p, ok := g.Products[o.Product]; ok {
			p.Stock += o.Quantity
		}
		delivered = append(delivered, o)
	}

	g.PendingOrders = remaining
	return delivered
}

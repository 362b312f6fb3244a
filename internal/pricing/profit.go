package pricing

// Channel is a sales outlet with its own commission cut.
type Channel string

const (
	ChannelStore       Channel = "STORE"
	ChannelTrendyol    Channel = "TRENDYOL"
	ChannelHepsiburada Channel = "HEPSIBURADA"
	ChannelN11         Channel = "N11"
)

var channelCommissions = map[Channel]float64{
	ChannelStore:       0,
	ChannelTrendyol:    0.20,
	ChannelHepsiburada: 0.18,
	ChannelN11:         0.15,
}

func (c Channel) Valid() bool {
	_, ok := channelCommissions[c]
	return ok
}

// CommissionRate returns the channel's cut as a fraction of the selling
// price. Unknown channels pay no commission.
func (c Channel) CommissionRate() float64 {
	return channelCommissions[c]
}

// Channels lists the known outlets in a stable order for pickers.
func Channels() []Channel {
	return []Channel{ChannelStore, ChannelTrendyol, ChannelHepsiburada, ChannelN11}
}

// ProfitSimulation is the outcome of selling one unit at a candidate price
// through a given channel.
type ProfitSimulation struct {
	Channel        Channel `json:"channel"`
	SellingPrice   float64 `json:"selling_price"`
	UnitCost       float64 `json:"unit_cost"`
	CommissionRate float64 `json:"commission_rate"`
	Commission     float64 `json:"commission"`
	NetProfit      float64 `json:"net_profit"`
	MarginPct      float64 `json:"margin_pct"`
}

// SimulateProfit prices one unit against its landed cost. The commission is
// taken off the selling price before cost is subtracted. Margin is net
// profit over selling price, zero when the price is zero.
func SimulateProfit(p Pricing, sellingPrice float64, channel Channel) ProfitSimulation {
	unitCost := LandedUnitCost(p)
	rate := channel.CommissionRate()
	commission := sellingPrice * rate
	netProfit := sellingPrice - commission - unitCost

	marginPct := 0.0
	if sellingPrice > 0 {
		marginPct = netProfit / sellingPrice * 100
	}

	return ProfitSimulation{
		Channel:        channel,
		SellingPrice:   sellingPrice,
		UnitCost:       unitCost,
		CommissionRate: rate,
		Commission:     commission,
		NetProfit:      netProfit,
		MarginPct:      marginPct,
	}
}

// SuggestedPrice proposes a starting point for the simulation, landed cost
// plus a 50 percent markup.
func SuggestedPrice(p Pricing) float64 {
	return LandedUnitCost(p) * 1.5
}

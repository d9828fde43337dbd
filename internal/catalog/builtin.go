package catalog

// Indicator categories
const (
	CategoryMomentum   = "Momentum"
	CategoryTrend      = "Trend"
	CategoryVolatility = "Volatility"
	CategoryVolume     = "Volume"
)

// priceField is the shared enum of candle fields an indicator can read.
var priceField = ParameterSchema{
	Name:    "field",
	Label:   "Field",
	Kind:    KindEnum,
	Default: "close",
	Choices: []Choice{
		{Value: "close", Label: "Close"},
		{Value: "open", Label: "Open"},
		{Value: "high", Label: "High"},
		{Value: "low", Label: "Low"},
	},
}

func period(def float64) ParameterSchema {
	return ParameterSchema{
		Name:    "period",
		Label:   "Period",
		Kind:    KindNumber,
		Default: def,
		Min:     1,
		Max:     500,
		Step:    1,
	}
}

// builtinDefinitions is the catalog data served by this service. The
// declaration order here is the order the builder presents indicators in.
var builtinDefinitions = []IndicatorDefinition{
	{
		ID:         "rsi",
		Label:      "Relative Strength Index",
		Category:   CategoryMomentum,
		Parameters: []ParameterSchema{period(14), priceField},
	},
	{
		ID:       "stochastic",
		Label:    "Stochastic Oscillator",
		Category: CategoryMomentum,
		Parameters: []ParameterSchema{
			{Name: "k_period", Label: "%K Period", Kind: KindNumber, Default: float64(14), Min: 1, Max: 100, Step: 1},
			{Name: "d_period", Label: "%D Period", Kind: KindNumber, Default: float64(3), Min: 1, Max: 50, Step: 1},
			{Name: "smooth", Label: "Smooth", Kind: KindNumber, Default: float64(3), Min: 1, Max: 50, Step: 1},
		},
	},
	{
		ID:       "macd",
		Label:    "MACD",
		Category: CategoryMomentum,
		Parameters: []ParameterSchema{
			{Name: "fast_period", Label: "Fast Period", Kind: KindNumber, Default: float64(12), Min: 1, Max: 200, Step: 1},
			{Name: "slow_period", Label: "Slow Period", Kind: KindNumber, Default: float64(26), Min: 1, Max: 200, Step: 1},
			{Name: "signal_period", Label: "Signal Period", Kind: KindNumber, Default: float64(9), Min: 1, Max: 100, Step: 1},
			priceField,
		},
	},
	{
		ID:         "sma",
		Label:      "Simple Moving Average",
		Category:   CategoryTrend,
		Parameters: []ParameterSchema{period(20), priceField},
	},
	{
		ID:         "ema",
		Label:      "Exponential Moving Average",
		Category:   CategoryTrend,
		Parameters: []ParameterSchema{period(20), priceField},
	},
	{
		ID:       "supertrend",
		Label:    "Supertrend",
		Category: CategoryTrend,
		Parameters: []ParameterSchema{
			period(10),
			{Name: "multiplier", Label: "Multiplier", Kind: KindNumber, Default: float64(3), Min: 0.5, Max: 10, Step: 0.1},
		},
	},
	{
		ID:         "adx",
		Label:      "Average Directional Index",
		Category:   CategoryTrend,
		Parameters: []ParameterSchema{period(14)},
	},
	{
		ID:       "bollinger",
		Label:    "Bollinger Bands",
		Category: CategoryVolatility,
		Parameters: []ParameterSchema{
			period(20),
			{Name: "std_dev", Label: "Std Dev", Kind: KindNumber, Default: float64(2), Min: 0.5, Max: 5, Step: 0.1},
			{
				Name:    "band",
				Label:   "Band",
				Kind:    KindEnum,
				Default: "middle",
				Choices: []Choice{
					{Value: "upper", Label: "Upper"},
					{Value: "middle", Label: "Middle"},
					{Value: "lower", Label: "Lower"},
				},
			},
		},
	},
	{
		ID:         "atr",
		Label:      "Average True Range",
		Category:   CategoryVolatility,
		Parameters: []ParameterSchema{period(14)},
	},
	{
		ID:         "vwap",
		Label:      "VWAP",
		Category:   CategoryVolume,
		Parameters: nil,
	},
}

// Builtin returns the catalog built from the embedded definitions.
func Builtin() *Catalog {
	c, err := New(builtinDefinitions)
	if err != nil {
		// builtin data is checked by tests; a bad definition is a bug
		panic(err)
	}
	return c
}

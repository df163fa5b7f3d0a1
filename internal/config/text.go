package config

import "github.com/rpgo/allocation-simulator/internal/domain"

// DefaultScenarioText returns the built-in feedback text of every category.
// Bodies are markdown.
func DefaultScenarioText() map[domain.ScenarioCategory]domain.ScenarioText {
	return map[domain.ScenarioCategory]domain.ScenarioText{
		domain.CategoryDangerActive: {
			Title: "Walking a tightrope: you are relying on luck",
			Body: `- **What is happening:** a large share sits in active trading (day trading, crypto, single stocks). It can win fast, and it can lose the principal just as fast.
- **How it feels:** every market move swings your mood.
- **Suggestion:** keep high-risk bets to a small slice, around 10%, and treat it as entertainment money.`,
		},
		domain.CategoryLiquidityCrisis: {
			Title: "No cash on hand: what happens in an emergency?",
			Body: `- **What is happening:** nearly everything is invested and the bank account is almost empty.
- **Risk:** a job loss or a medical bill could force you to sell during a crash.
- **Suggestion:** hold six months of living expenses in cash before investing the rest.`,
		},
		domain.CategoryNoRealEstate: {
			Title: "Flexible but thin: no real assets",
			Body: `- **What is happening:** your money is in stocks or cash, easy to reach but with no real assets behind it.
- **Risk:** housing costs and rents tend to rise with inflation, so the cost of living may outgrow you.
- **Suggestion:** if buying property is out of reach, a small REIT position gives similar inflation protection.`,
		},
		domain.CategoryCashDominant: {
			Title: "Too conservative: your money is shrinking",
			Body: `- **What is happening:** most of the money sits in deposits. The balance never falls, so it feels safe.
- **Risk:** inflation erodes purchasing power quietly; 100 today may buy 60 worth of goods in 20 years.
- **Suggestion:** move a modest share, around 20%, into a broad index fund.`,
		},
		domain.CategoryREDominant: {
			Title: "Too much property: your money is locked up",
			Body: `- **What is happening:** most of your net worth is in real estate.
- **Risk:** property is slow to sell. A sudden large expense may force a discounted sale.
- **Suggestion:** keep some cash or index funds you can sell in minutes.`,
		},
		domain.CategoryETFDominant: {
			Title: "Riding the roller coaster: hold on tight",
			Body: `- **What is happening:** you rely on index funds and long-term economic growth. A sound plan with a bumpy ride.
- **Be ready:** markets sometimes fall 30% or more. Not selling then is harder than it sounds.
- **Suggestion:** think in ten-year periods and treat short-term moves as noise.`,
		},
		domain.CategoryBalanced: {
			Title: "Balanced offense and defense: the golden ratio",
			Body: `- **Why it works:** cash covers emergencies, property and index funds fight inflation, and a small active share chases extra return.
- **In practice:** like a good car with airbags, a steady engine and a little room to accelerate.
- **Outlook:** an allocation you can sleep on. Time does the rest.`,
		},
		domain.CategoryDefault: {
			Title: "Still exploring: your money is scattered",
			Body: `- **What is happening:** a bit of everything, with no clear core strategy.
- **Risk:** without an anchor asset the portfolio tends to stand still.
- **Suggestion:** decide which risk you tolerate best, slow-to-sell property or volatile stocks, and make it the core.`,
		},
	}
}

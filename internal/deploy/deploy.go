// Package deploy runs the fixed git sequence that ships the Micro Scalper
// bot: status, stage everything, commit with the release message, push to
// origin/main. The sequence never branches on a step's exit code; a rejected
// push still reaches the closing banner. Git's own output is the only
// diagnostics surface.
package deploy

// Remote and Branch are the fixed push target. They are constants on
// purpose: this tool ships one repo to one place.
const (
	Remote = "origin"
	Branch = "main"
)

// CommitMessage is the release commit message, identical on every run.
const CommitMessage = `Deploy Micro Scalper v2.0 to production

- Flattrade API integration with auto token refresh
- Trailing stop-loss manager for NIFTY options
- Smart entry engine and spot analyzer
- Webhook postback server for order updates

Ready for Render deployment`

// Banner text around the run
const (
	StartBanner    = "MICRO SCALPER - DEPLOY TO GITHUB"
	SuccessMessage = "Deployment pushed! Render will pick up the new build."
	DashboardURL   = "https://micro-scalper.onrender.com"
)

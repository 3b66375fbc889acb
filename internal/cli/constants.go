package cli

const (
	RootCmdName  = "taxfootprint"
	RootCmdShort = "Estimate the taxes a UK household pays in a year"
	RootCmdLong  = `taxfootprint estimates every direct and indirect tax a UK household pays:
income tax and National Insurance, council tax, VAT, fuel and excise duties,
transport taxes and the taxes landlords pass on through rent.

Answers come from a YAML or JSON questionnaire file. Rates default to the
built-in tax year and may be overridden with --rates.`

	FootprintCmdName  = "footprint"
	FootprintCmdShort = "Calculate the full annual tax footprint"

	LiveCmdName  = "live"
	LiveCmdShort = "Quick income-led estimate from partial answers"

	IncomeCmdName  = "income"
	IncomeCmdShort = "Convert hours and an hourly rate to annual pay"

	RatesCmdName  = "rates"
	RatesCmdShort = "Show, validate or export rate tables"

	ServeCmdName  = "serve"
	ServeCmdShort = "Serve the calculator over HTTP"
	ServeCmdLong  = "Start the JSON API. Stops gracefully on SIGINT or SIGTERM."
)

package constvars

const (
	MongoCollectionClaims   = "claims"
	MongoCollectionCounters = "counters"
)

const (
	SequencePrefixClaim   = "CLM"
	SequencePrefixInvoice = "INV"
	SequencePrefixPayment = "PAY"
)

const (
	RedisKeyClaimLockFormat     = "claim:lock:%s"
	RedisKeySEPLockFormat       = "claim:sep-lock:%s"
	RedisKeySatusehatTokenFmt   = "satusehat:token:%s:%s"
	RedisKeyVClaimThrottleGroup = "vclaim-outbound"
)

const (
	URLParamClaimNumber = "claim_number"
)

const (
	GrouperEngineINACBG = "INACBG"
)

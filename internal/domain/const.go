package domain

// ZeroAddress is the Ethereum zero address, used both as the mint/burn
// counterparty in transfers and as the owner key of singleton total records
const ZeroAddress = "0x0000000000000000000000000000000000000000"

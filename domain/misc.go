package domain

// Table is a mongo collection name
type Table string

const (
	TableListings Table = "listings"
)

// Address is a base58 encoded solana account address
type Address string

const EmptyAddress = Address("")

func (a Address) String() string {
	return string(a)
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return string(a) == string(b)
}

func (a Address) Ptr() *Address {
	return &a
}

// Mint is the address of an nft's mint account, used as the permanent
// key of a listing row
type Mint = Address

// Lamports is an amount in the smallest currency unit, rendering in sol
// lives in base/pricefmt
type Lamports uint64

type TxSignature string

func (s TxSignature) String() string {
	return string(s)
}

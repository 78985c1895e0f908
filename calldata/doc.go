// Package calldata assembles and reconciles contract call data.
//
// Call data is a four byte selector followed by the ABI encoded arguments:
//
//	0xa9059cbb                                                          transfer(address,uint256)
//	000000000000000000000000495d96faaacee16dd3ca62cab20a0f9548cdddb4    to
//	00000000000000000000000000000000000000000000000000000000000003e8    amount
//
// The selector is the first four bytes of the keccak-256 hash of the
// canonical signature. Constructor arguments carry no selector and are
// appended to the contract bytecode for deployment.
//
// # Usage
//
//	a := calldata.NewAssembler(abi.NewCodecWithDefaults())
//	data, err := a.EncodeFunctionCall("transfer", []abi.Argument{
//		{Type: abi.AddressType(), Value: to},
//		{Type: abi.UintType(256), Value: abi.NewUint64(1000)},
//	})
//
//	ok, err := a.MatchFunctionCall(txInput, "transfer", args)
//
// Assembler is safe for concurrent use.
package calldata

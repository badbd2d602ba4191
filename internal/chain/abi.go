package chain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Minimal ABIs for the three settlement contracts. Only the functions and
// events this client consumes are declared.
const (
	protocolRegistryABI = `[
	{"type":"function","name":"registerProtocol","inputs":[{"name":"name","type":"string"},{"name":"repoUrl","type":"string"}],"outputs":[{"name":"protocolId","type":"bytes32"}],"stateMutability":"nonpayable"},
	{"type":"event","name":"ProtocolRegistered","inputs":[{"name":"protocolId","type":"bytes32","indexed":true},{"name":"name","type":"string","indexed":false}],"anonymous":false}
]`

	validationRegistryABI = `[
	{"type":"function","name":"recordValidation","inputs":[{"name":"protocolId","type":"bytes32"},{"name":"proofHash","type":"bytes32"},{"name":"outcome","type":"uint8"}],"outputs":[{"name":"validationId","type":"bytes32"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"getValidation","inputs":[{"name":"validationId","type":"bytes32"}],"outputs":[{"name":"proofHash","type":"bytes32"},{"name":"outcome","type":"uint8"}],"stateMutability":"view"},
	{"type":"event","name":"ValidationRecorded","inputs":[{"name":"validationId","type":"bytes32","indexed":true},{"name":"protocolId","type":"bytes32","indexed":true},{"name":"proofHash","type":"bytes32","indexed":false},{"name":"outcome","type":"uint8","indexed":false}],"anonymous":false}
]`

	bountyPoolABI = `[
	{"type":"function","name":"depositBounty","inputs":[{"name":"protocolId","type":"bytes32"}],"outputs":[],"stateMutability":"payable"},
	{"type":"function","name":"releaseBounty","inputs":[{"name":"protocolId","type":"bytes32"},{"name":"recipient","type":"address"},{"name":"severity","type":"uint8"}],"outputs":[{"name":"bountyId","type":"bytes32"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"calculateBountyAmount","inputs":[{"name":"protocolId","type":"bytes32"},{"name":"severity","type":"uint8"}],"outputs":[{"name":"amount","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"getProtocolBalance","inputs":[{"name":"protocolId","type":"bytes32"}],"outputs":[{"name":"balance","type":"uint256"}],"stateMutability":"view"},
	{"type":"event","name":"BountyReleased","inputs":[{"name":"bountyId","type":"bytes32","indexed":true},{"name":"protocolId","type":"bytes32","indexed":true},{"name":"recipient","type":"address","indexed":false},{"name":"amount","type":"uint256","indexed":false}],"anonymous":false}
]`
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parse contract abi: %v", err))
	}
	return parsed
}

var (
	registryABI   = mustParseABI(protocolRegistryABI)
	validationABI = mustParseABI(validationRegistryABI)
	poolABI       = mustParseABI(bountyPoolABI)
)

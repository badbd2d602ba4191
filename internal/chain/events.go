package chain

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// ValidationRecordedTopic returns the topic hash of the registry's
// ValidationRecorded event.
func ValidationRecordedTopic() common.Hash {
	return validationABI.Events["ValidationRecorded"].ID
}

// BountyReleasedTopic returns the topic hash of the pool's BountyReleased
// event.
func BountyReleasedTopic() common.Hash {
	return poolABI.Events["BountyReleased"].ID
}

// DecodeLog turns a raw settlement-contract log into a ChainEvent. Logs with
// unknown topics return false.
func DecodeLog(lg types.Log) (model.ChainEvent, bool, error) {
	if len(lg.Topics) < 3 {
		return model.ChainEvent{}, false, nil
	}

	base := model.ChainEvent{
		TxHash:      lg.TxHash.Hex(),
		LogIndex:    lg.Index,
		BlockNumber: lg.BlockNumber,
		OnChainID:   lg.Topics[1].Hex(),
		ProtocolID:  lg.Topics[2].Hex(),
	}

	switch lg.Topics[0] {
	case ValidationRecordedTopic():
		base.Name = model.EventValidationRecorded
		return base, true, nil
	case BountyReleasedTopic():
		out, err := poolABI.Unpack("BountyReleased", lg.Data)
		if err != nil {
			return model.ChainEvent{}, false, fmt.Errorf("unpack BountyReleased %s/%d: %w", base.TxHash, lg.Index, err)
		}
		recipient, ok := out[0].(common.Address)
		if !ok {
			return model.ChainEvent{}, false, fmt.Errorf("BountyReleased recipient has type %T", out[0])
		}
		amount, ok := out[1].(*big.Int)
		if !ok {
			return model.ChainEvent{}, false, fmt.Errorf("BountyReleased amount has type %T", out[1])
		}
		base.Name = model.EventBountyReleased
		base.Recipient = recipient.Hex()
		base.AmountWei = amount.String()
		return base, true, nil
	default:
		return model.ChainEvent{}, false, nil
	}
}

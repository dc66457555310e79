package lottery_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/malbeclabs/lottery/smartcontract/sdk/go/lottery"
	"github.com/stretchr/testify/require"
)

func TestSDK_Lottery_LotteryState_RoundTrip(t *testing.T) {
	t.Parallel()

	original := &lottery.LotteryState{
		Owner:       solana.NewWallet().PublicKey(),
		NetPool:     523_250_000_000,
		TicketCount: 5230,
		LastDraw:    -1_700_000_000,
		Processing:  true,
		TicketPrice: 100_000_000,
	}

	var buf bytes.Buffer
	require.NoError(t, original.Serialize(&buf))
	require.Len(t, buf.Bytes(), lottery.LotteryStateSize)

	var decoded lottery.LotteryState
	require.NoError(t, decoded.Deserialize(buf.Bytes()))
	require.Equal(t, *original, decoded)
}

func TestSDK_Lottery_LotteryState_WireLayout(t *testing.T) {
	t.Parallel()

	owner := solana.NewWallet().PublicKey()
	state := &lottery.LotteryState{
		Owner:       owner,
		NetPool:     0x0102030405060708,
		TicketCount: 7,
		LastDraw:    1_710_460_800,
		Processing:  true,
		TicketPrice: 1_000_000,
	}

	var buf bytes.Buffer
	require.NoError(t, state.Serialize(&buf))
	data := buf.Bytes()

	require.Equal(t, owner[:], data[0:32])
	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, data[32:40], "net pool must be little-endian")
	require.Equal(t, uint64(7), binary.LittleEndian.Uint64(data[40:48]))
	require.Equal(t, int64(1_710_460_800), int64(binary.LittleEndian.Uint64(data[48:56])))
	require.Equal(t, byte(1), data[56])
	require.Equal(t, uint64(1_000_000), binary.LittleEndian.Uint64(data[57:65]))
}

func TestSDK_Lottery_LotteryState_LastDrawTime(t *testing.T) {
	t.Parallel()

	require.True(t, (&lottery.LotteryState{}).LastDrawTime().IsZero())

	state := &lottery.LotteryState{LastDraw: 1_710_460_800}
	require.Equal(t, "2024-03-15T00:00:00Z", state.LastDrawTime().Format("2006-01-02T15:04:05Z07:00"))
}

func TestSDK_Lottery_ReferralAccount_RoundTrip(t *testing.T) {
	t.Parallel()

	original := &lottery.ReferralAccount{
		Parent:      solana.NewWallet().PublicKey(),
		L1Referrals: 15,
		L2Referrals: 32,
		L1Volume:    150_500_000_000,
		L2Volume:    275_000_000_000,
		Earnings:    45_230_000_000,
	}

	var buf bytes.Buffer
	require.NoError(t, original.Serialize(&buf))
	require.Len(t, buf.Bytes(), lottery.ReferralAccountSize)

	var decoded lottery.ReferralAccount
	require.NoError(t, decoded.Deserialize(buf.Bytes()))
	require.Equal(t, *original, decoded)
	require.True(t, decoded.HasParent())
	require.Equal(t, uint64(45_230_000_000), binary.LittleEndian.Uint64(buf.Bytes()[64:72]))
}

func TestSDK_Lottery_ReferralAccount_NoParent(t *testing.T) {
	t.Parallel()

	referral := &lottery.ReferralAccount{Earnings: 1}
	require.False(t, referral.HasParent())
}

func TestSDK_Lottery_UserTicketAccount_RoundTrip(t *testing.T) {
	t.Parallel()

	original := &lottery.UserTicketAccount{
		Owner:       solana.NewWallet().PublicKey(),
		TicketCount: 12,
	}

	var buf bytes.Buffer
	require.NoError(t, original.Serialize(&buf))
	require.Len(t, buf.Bytes(), lottery.UserTicketAccountSize)

	var decoded lottery.UserTicketAccount
	require.NoError(t, decoded.Deserialize(buf.Bytes()))
	require.Equal(t, *original, decoded)
}

package lottery

import (
	"io"
	"time"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// LotteryState is the singleton program account derived from ["lottery"].
type LotteryState struct {
	Owner       solana.PublicKey // 32 bytes
	NetPool     uint64           // 8 bytes LE, lamports
	TicketCount uint64           // 8 bytes LE
	LastDraw    int64            // 8 bytes LE, unix seconds
	Processing  bool             // 1 byte
	TicketPrice uint64           // 8 bytes LE, lamports
}

// LastDrawTime returns the last draw timestamp, or the zero time if no draw has happened.
func (s *LotteryState) LastDrawTime() time.Time {
	if s.LastDraw == 0 {
		return time.Time{}
	}
	return time.Unix(s.LastDraw, 0).UTC()
}

func (s *LotteryState) Serialize(w io.Writer) error {
	enc := bin.NewBorshEncoder(w)
	if err := enc.Encode(s.Owner); err != nil {
		return err
	}
	if err := enc.Encode(s.NetPool); err != nil {
		return err
	}
	if err := enc.Encode(s.TicketCount); err != nil {
		return err
	}
	if err := enc.Encode(s.LastDraw); err != nil {
		return err
	}
	if err := enc.Encode(s.Processing); err != nil {
		return err
	}
	if err := enc.Encode(s.TicketPrice); err != nil {
		return err
	}
	return nil
}

func (s *LotteryState) Deserialize(data []byte) error {
	dec := bin.NewBorshDecoder(data)
	if err := dec.Decode(&s.Owner); err != nil {
		return err
	}
	if err := dec.Decode(&s.NetPool); err != nil {
		return err
	}
	if err := dec.Decode(&s.TicketCount); err != nil {
		return err
	}
	if err := dec.Decode(&s.LastDraw); err != nil {
		return err
	}
	if err := dec.Decode(&s.Processing); err != nil {
		return err
	}
	if err := dec.Decode(&s.TicketPrice); err != nil {
		return err
	}
	return nil
}

// ReferralAccount tracks a participant's referrer and commission totals.
// A zero Parent means the participant has no referrer.
type ReferralAccount struct {
	Parent      solana.PublicKey // 32 bytes
	L1Referrals uint64           // 8 bytes LE
	L2Referrals uint64           // 8 bytes LE
	L1Volume    uint64           // 8 bytes LE, lamports
	L2Volume    uint64           // 8 bytes LE, lamports
	Earnings    uint64           // 8 bytes LE, lamports
}

func (r *ReferralAccount) HasParent() bool {
	return !r.Parent.IsZero()
}

func (r *ReferralAccount) Serialize(w io.Writer) error {
	enc := bin.NewBorshEncoder(w)
	if err := enc.Encode(r.Parent); err != nil {
		return err
	}
	if err := enc.Encode(r.L1Referrals); err != nil {
		return err
	}
	if err := enc.Encode(r.L2Referrals); err != nil {
		return err
	}
	if err := enc.Encode(r.L1Volume); err != nil {
		return err
	}
	if err := enc.Encode(r.L2Volume); err != nil {
		return err
	}
	if err := enc.Encode(r.Earnings); err != nil {
		return err
	}
	return nil
}

func (r *ReferralAccount) Deserialize(data []byte) error {
	dec := bin.NewBorshDecoder(data)
	if err := dec.Decode(&r.Parent); err != nil {
		return err
	}
	if err := dec.Decode(&r.L1Referrals); err != nil {
		return err
	}
	if err := dec.Decode(&r.L2Referrals); err != nil {
		return err
	}
	if err := dec.Decode(&r.L1Volume); err != nil {
		return err
	}
	if err := dec.Decode(&r.L2Volume); err != nil {
		return err
	}
	if err := dec.Decode(&r.Earnings); err != nil {
		return err
	}
	return nil
}

type UserTicketAccount struct {
	Owner       solana.PublicKey // 32 bytes
	TicketCount uint64           // 8 bytes LE
}

func (u *UserTicketAccount) Serialize(w io.Writer) error {
	enc := bin.NewBorshEncoder(w)
	if err := enc.Encode(u.Owner); err != nil {
		return err
	}
	if err := enc.Encode(u.TicketCount); err != nil {
		return err
	}
	return nil
}

func (u *UserTicketAccount) Deserialize(data []byte) error {
	dec := bin.NewBorshDecoder(data)
	if err := dec.Decode(&u.Owner); err != nil {
		return err
	}
	if err := dec.Decode(&u.TicketCount); err != nil {
		return err
	}
	return nil
}

package auth



import (
	"testing"
	"time"

	"github.com/dmitrijs2005/peerreview/internal/common"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	wallet := "wallet-123"

	tok, err := GenerateToken(wallet, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	gotWallet, err := GetWalletFromToken(tok, secret)
	if err != nil {
		t.Fatalf("GetWalletFromToken error: %v", err)
	}
	if gotWallet != wallet {
		t.Fatalf("wallet mismatch: got %q want %q", gotWallet, wallet)
	}
}

func TestGetWalletFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	wallet := "u1"

	tok, err := GenerateToken(wallet, secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetWalletFromToken(tok, secret)
	if err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
	if err != common.ErrTokenExpired {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestGetWalletFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	wallet := "u2"
	tok, err := GenerateToken(wallet, []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetWalletFromToken(tok, []byte("wrong-secret"))
	if err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestGetWalletFromToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := GetWalletFromToken("not.a.jwt", []byte("k"))
	if err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

package usecase

import (
	"context"
	"testing"

	"find-fuel/internal/dto/request"
	"find-fuel/pkg/apperrors"
	"find-fuel/pkg/token"
	"find-fuel/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testTokens() *token.Manager {
	return token.NewManager(utils.JWTConfig{
		Secret:              "unit-test-secret",
		AccessExpiryMinutes: 15,
		RefreshExpiryDays:   7,
	})
}

func registerReq() *request.RegisterRequest {
	return &request.RegisterRequest{
		Usuario: "maria",
		Nome:    "Maria Silva",
		Email:   "maria@example.com",
		Senha:   "senha123",
	}
}

func TestRegister_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testTokens(), zap.NewNop())

	user, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	assert.Equal(t, "maria", user.Usuario)
	assert.Equal(t, "Maria Silva", user.Nome)
	assert.Equal(t, "user", string(user.Role))

	// The stored hash must verify and must never equal the plaintext
	stored, err := repo.FindByUsuario(context.Background(), "maria")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "senha123", stored.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("senha123", stored.PasswordHash))
}

func TestRegister_DuplicateHandle(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testTokens(), zap.NewNop())

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	second := registerReq()
	second.Email = "other@example.com"
	_, err = svc.Register(context.Background(), second)
	assert.True(t, apperrors.IsConflict(err))

	count, _ := repo.CountAll(context.Background())
	assert.Equal(t, int64(1), count)
}

func TestRegister_DuplicateEmailDifferentHandle(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testTokens(), zap.NewNop())

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	second := registerReq()
	second.Usuario = "joana"
	_, err = svc.Register(context.Background(), second)
	assert.True(t, apperrors.IsConflict(err))

	count, _ := repo.CountAll(context.Background())
	assert.Equal(t, int64(1), count)
}

func TestLogin_ByHandleAndByEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testTokens(), zap.NewNop())

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	for _, identifier := range []string{"maria", "maria@example.com"} {
		pair, err := svc.Login(context.Background(), &request.LoginRequest{
			Username: identifier,
			Password: "senha123",
		})
		require.NoError(t, err, "login with %s", identifier)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.Equal(t, "bearer", pair.TokenType)
		require.NotNil(t, pair.User)
		assert.Equal(t, "maria", pair.User.Usuario)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testTokens(), zap.NewNop())

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Username: "maria",
		Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Username: "nobody",
		Password: "senha123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefresh_MintsNewPair(t *testing.T) {
	repo := newFakeUserRepo()
	tokens := testTokens()
	svc := NewAuthService(repo, tokens, zap.NewNop())

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	pair, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "maria",
		Password: "senha123",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)

	// The fresh access token must authenticate
	claims, err := tokens.Parse(refreshed.AccessToken, token.TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "maria", claims.Subject)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testTokens(), zap.NewNop())

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	pair, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "maria",
		Password: "senha123",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrWrongTokenType)
}

func TestRefresh_UnknownSubject(t *testing.T) {
	repo := newFakeUserRepo()
	tokens := testTokens()
	svc := NewAuthService(repo, tokens, zap.NewNop())

	// Valid token for a handle with no user record behind it
	refresh, _, err := tokens.IssueRefresh("ghost")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), refresh)
	assert.ErrorIs(t, err, apperrors.ErrUnknownSubject)
}

//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "aerotrav/internal/handler/dto/request"
	"aerotrav/internal/infra"
	"aerotrav/internal/pkg/errs"
	"aerotrav/internal/pkg/jwt"
	"aerotrav/internal/pkg/password"
	"aerotrav/internal/usecase/commands"
	"aerotrav/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubUserReads struct {
	users  map[uuid.UUID]*queries.AuthorizedUserView
	hashes map[string]string
}

func (r *stubUserReads) add(email, plain string, active bool) *queries.AuthorizedUserView {
	hash, err := password.HashPassword(plain)
	if err != nil {
		panic(err)
	}
	v := &queries.AuthorizedUserView{ID: uuid.New(), Email: email, Role: "customer", IsActive: active}
	r.users[v.ID] = v
	r.hashes[email] = hash
	return v
}

func (r *stubUserReads) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	if v, ok := r.users[id]; ok {
		return v, nil
	}
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func (r *stubUserReads) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	for _, v := range r.users {
		if v.Email == email {
			return v, r.hashes[email], nil
		}
	}
	return nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

type AuthCommandsTestSuite struct {
	suite.Suite
	store *memStore
	reads *stubUserReads
	jwt   *jwt.Service
	cmds  commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.store = newMemStore()
	s.reads = &stubUserReads{users: map[uuid.UUID]*queries.AuthorizedUserView{}, hashes: map[string]string{}}
	s.jwt = jwt.NewService("unit-secret", 15*time.Minute, 24*time.Hour)
	s.cmds = commands.NewAuthCommands(s.store, s.reads, s.jwt)
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestRegister() {
	in := commands.RegisterInput{Email: "mika@example.com", Password: "password123", FirstName: "Mika", LastName: "Ito"}

	res, err := s.cmds.Register(context.Background(), in)
	s.Require().NoError(err)
	s.Equal(res.UserID, s.store.emails["mika@example.com"])

	_, err = s.cmds.Register(context.Background(), in)
	s.ErrorIs(err, commands.ErrEmailTaken)

	_, err = s.cmds.Register(context.Background(), commands.RegisterInput{Email: "bad", Password: "password123", FirstName: "A", LastName: "B"})
	s.True(errs.Is(err, errs.ErrDomainValidation))

	_, err = s.cmds.Register(context.Background(), commands.RegisterInput{Email: "x@example.com", Password: "password123", FirstName: " ", LastName: "B"})
	s.True(errs.Is(err, errs.ErrDomainValidation), "blank first name")
}

func (s *AuthCommandsTestSuite) TestLogin() {
	active := s.reads.add("active@example.com", "password123", true)
	s.reads.add("inactive@example.com", "password123", false)

	s.Run("成功時はトークンを発行し最終ログインを更新する", func() {
		res, err := s.cmds.Login(context.Background(), reqdto.LoginRequest{Email: "active@example.com", Password: "password123"})
		s.Require().NoError(err)
		s.Equal(active.ID, res.UserID)

		claims, err := s.jwt.ValidateToken(res.TokenPair.AccessToken)
		s.Require().NoError(err)
		s.Equal(jwt.TokenTypeAccess, claims.TokenType)
		s.Contains(s.store.logins, active.ID)
	})

	s.Run("パスワード不一致", func() {
		_, err := s.cmds.Login(context.Background(), reqdto.LoginRequest{Email: "active@example.com", Password: "wrongpass1"})
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("未登録メールは不一致と同じ扱い", func() {
		_, err := s.cmds.Login(context.Background(), reqdto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("無効化ユーザー", func() {
		_, err := s.cmds.Login(context.Background(), reqdto.LoginRequest{Email: "inactive@example.com", Password: "password123"})
		s.ErrorIs(err, commands.ErrUserInactive)
	})
}

func (s *AuthCommandsTestSuite) TestRefreshToken() {
	active := s.reads.add("active@example.com", "password123", true)
	login, err := s.cmds.Login(context.Background(), reqdto.LoginRequest{Email: "active@example.com", Password: "password123"})
	s.Require().NoError(err)

	s.Run("リフレッシュトークンで再発行", func() {
		pair, err := s.cmds.RefreshToken(context.Background(), login.TokenPair.RefreshToken)
		s.Require().NoError(err)
		claims, err := s.jwt.ValidateToken(pair.RefreshToken)
		s.Require().NoError(err)
		s.Equal(active.ID, claims.UserID)
		s.Equal(jwt.TokenTypeRefresh, claims.TokenType)
	})

	s.Run("アクセストークンは使えない", func() {
		_, err := s.cmds.RefreshToken(context.Background(), login.TokenPair.AccessToken)
		s.ErrorIs(err, commands.ErrTokenValidation)
	})

	s.Run("改ざんトークン", func() {
		_, err := s.cmds.RefreshToken(context.Background(), login.TokenPair.RefreshToken+"x")
		s.True(errs.Is(err, commands.ErrTokenValidation))
	})

	s.Run("無効化後は拒否", func() {
		active.IsActive = false
		defer func() { active.IsActive = true }()
		_, err := s.cmds.RefreshToken(context.Background(), login.TokenPair.RefreshToken)
		s.ErrorIs(err, commands.ErrUserInactive)
	})
}

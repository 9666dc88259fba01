package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestaodocs/gestaodocs-api/internal/application/auth"
	"github.com/gestaodocs/gestaodocs-api/internal/application/dto"
	"github.com/gestaodocs/gestaodocs-api/internal/domain"
	"github.com/gestaodocs/gestaodocs-api/internal/domain/entity"
)

// fakeUserRepo repositório em memória para os testes do use case.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func newUseCase(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secret-de-teste",
		ExpMinutes: 1440,
		Issuer:     "gestaodocs-test",
	})
}

func TestRegisterUser_Sucesso(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	out, err := uc.RegisterUser(dto.RegisterRequest{Email: "User@X.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "user@x.com", out.Email, "email deve ser normalizado para minúsculas")
	assert.NotEmpty(t, out.ID)

	stored := repo.byEmail["user@x.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash, "password nunca em texto plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "user@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "user@x.com", Password: "outra123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Len(t, repo.byEmail, 1, "nenhum usuário novo deve ser criado")
}

func TestRegisterUser_EntradaInvalida(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "sem-arroba", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "user@x.com", Password: "curta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "password com menos de 6 caracteres")
}

func TestLogin_CicloCompleto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "user@x.com", Password: "secret1"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "user@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token, "login deve emitir token de sessão")
	assert.Equal(t, "user@x.com", out.User.Email)
}

// Email inexistente e password errado devolvem o mesmo erro, para não
// revelar qual dos dois falhou.
func TestLogin_FalhaUniforme(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "user@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, errSenha := uc.Login(dto.LoginRequest{Email: "user@x.com", Password: "errada1"})
	_, errEmail := uc.Login(dto.LoginRequest{Email: "naoexiste@x.com", Password: "secret1"})

	assert.ErrorIs(t, errSenha, domain.ErrUnauthorized)
	assert.ErrorIs(t, errEmail, domain.ErrUnauthorized)
	assert.Equal(t, errSenha, errEmail, "mesmo erro para email ausente e password incorreto")
}

// Propriedade do hash: verify(hash(p), p) passa e verify(hash(p), p') falha.
func TestPasswordHash_RoundTrip(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("secret1")))
	assert.Error(t, bcrypt.CompareHashAndPassword(hash, []byte("secret2")))
}

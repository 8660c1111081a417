package identity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/vagones-api/internal/application/identity"
	"github.com/jhoicas/vagones-api/internal/domain/entity"
)

// fakeProfileRepo implementa repository.ProfileRepository en memoria.
type fakeProfileRepo struct {
	profiles map[string]*entity.Profile
	err      error
}

func (f *fakeProfileRepo) GetByUserID(userID string) (*entity.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[userID], nil
}

func (f *fakeProfileRepo) Upsert(p *entity.Profile) error { return nil }

func TestResolve_PerfilTienePrioridad(t *testing.T) {
	repo := &fakeProfileRepo{profiles: map[string]*entity.Profile{
		"u1": {UserID: "u1", CompanyID: "co-perfil"},
	}}
	r := identity.NewResolver(repo)

	scope, err := r.Resolve(context.Background(), identity.Session{
		UserID:   "u1",
		Metadata: map[string]string{"company_id": "co-metadata"},
	})
	require.NoError(t, err)
	assert.Equal(t, "co-perfil", scope.CompanyID,
		"el perfil gana sobre el metadata de sesión")
	assert.Equal(t, "u1", scope.UserID)
	assert.False(t, scope.IsZero())
}

func TestResolve_FallbackAMetadata(t *testing.T) {
	r := identity.NewResolver(&fakeProfileRepo{})

	scope, err := r.Resolve(context.Background(), identity.Session{
		UserID:   "u2",
		Metadata: map[string]string{"company_id": "co-meta"},
	})
	require.NoError(t, err)
	assert.Equal(t, "co-meta", scope.CompanyID)
}

func TestResolve_FallbackACampoHeredado(t *testing.T) {
	r := identity.NewResolver(&fakeProfileRepo{})

	// Sin perfil ni company_id; solo el campo camelCase heredado.
	scope, err := r.Resolve(context.Background(), identity.Session{
		UserID:   "u3",
		Metadata: map[string]string{"companyId": "co-legacy"},
	})
	require.NoError(t, err)
	assert.Equal(t, "co-legacy", scope.CompanyID)
}

func TestResolve_SinFuentes_ScopeVacio(t *testing.T) {
	r := identity.NewResolver(&fakeProfileRepo{})

	scope, err := r.Resolve(context.Background(), identity.Session{UserID: "u4"})
	require.NoError(t, err)
	assert.True(t, scope.IsZero(), "sin fuentes el scope queda vacío; el caso de uso aborta")
}

func TestResolve_PerfilSinEmpresa_SigueLaCadena(t *testing.T) {
	repo := &fakeProfileRepo{profiles: map[string]*entity.Profile{
		"u5": {UserID: "u5", CompanyID: ""},
	}}
	r := identity.NewResolver(repo)

	scope, err := r.Resolve(context.Background(), identity.Session{
		UserID:   "u5",
		Metadata: map[string]string{"company_id": "co-meta"},
	})
	require.NoError(t, err)
	assert.Equal(t, "co-meta", scope.CompanyID,
		"perfil sin empresa no corta la cadena de fallbacks")
}

func TestResolve_ErrorDeInfraestructura(t *testing.T) {
	repo := &fakeProfileRepo{err: errors.New("db caída")}
	r := identity.NewResolver(repo)

	_, err := r.Resolve(context.Background(), identity.Session{UserID: "u6"})
	assert.Error(t, err, "fallas del store se propagan, no se enmascaran con metadata")
}

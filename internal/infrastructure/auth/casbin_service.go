package auth

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

// DoctorRole is the casbin subject every authenticated doctor acts as
const DoctorRole = "role_doctor"

// DefaultModel is used when no model file is configured
const DefaultModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch2(r.obj, p.obj) && regexMatch(r.act, p.act)
`

// DefaultPolicies are the routes every doctor may call
var DefaultPolicies = [][]string{
	{DoctorRole, "/api/auth/me", "GET"},
	{DoctorRole, "/api/patients", "(GET|POST)"},
	{DoctorRole, "/api/patients/:id", "(GET|PUT|DELETE)"},
	{DoctorRole, "/api/analytics/dashboard", "GET"},
}

type CasbinService struct{ E *casbin.Enforcer }

// NewCasbinService loads the model from modelPath, or DefaultModel when empty,
// and stores policies in the database through the gorm adapter.
func NewCasbinService(db *gorm.DB, modelPath string) (*CasbinService, error) {
	m, err := LoadModel(modelPath)
	if err != nil {
		return nil, err
	}
	adp, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}
	E, err := casbin.NewEnforcer(m, adp)
	if err != nil {
		return nil, err
	}
	if err := E.LoadPolicy(); err != nil {
		return nil, err
	}
	return &CasbinService{E}, nil
}

// LoadModel reads a casbin model file, falling back to DefaultModel
func LoadModel(modelPath string) (model.Model, error) {
	if modelPath == "" {
		return model.NewModelFromString(DefaultModel)
	}
	return model.NewModelFromFile(modelPath)
}

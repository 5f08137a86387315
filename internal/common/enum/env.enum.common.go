package enum

type EnvEnum string

const (
	DEVELOPMENT EnvEnum = "development"
	STAGING     EnvEnum = "staging"
	PRODUCTION  EnvEnum = "production"
)

func (e EnvEnum) ToString() string {
	return string(e)
}

func (e EnvEnum) IsValid() bool {
	switch e {
	case DEVELOPMENT, STAGING, PRODUCTION:
		return true
	}
	return false
}

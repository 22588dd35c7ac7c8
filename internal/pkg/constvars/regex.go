package constvars

const (
	RegexContainAtLeastOneUppercase = `.*[A-Z].*`
	RegexContainAtLeastOneLowercase = `.*[a-z].*`
	RegexContainAtLeastOneDigit     = `.*\d.*`
	RegexWardNumber                 = `^[A-Z]-\d{3}$`
	RegexPhoneNumberTenDigits       = `^[0-9]{10}$`
	RegexPincode                    = `^[0-9]{6}$`
	RegexBloodPressure              = `^\d{2,3}/\d{2,3}$`
	RegexUsername                   = `^[a-zA-Z0-9_.]{3,30}$`
)

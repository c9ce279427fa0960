package validators

var CreateUserSchema = Schema{
	{Name: "name", Type: TypeString, Required: true, Rules: "max=100"},
	{Name: "email", Type: TypeString, Required: true, Rules: "email,max=100,email_domain"},
	{Name: "password", Type: TypeString, Required: true, Rules: "min=6,max=72"},
}

var CreateSessionSchema = Schema{
	{Name: "email", Type: TypeString, Required: true, Rules: "email"},
	{Name: "password", Type: TypeString, Required: true},
}

var UpdateProfileSchema = Schema{
	{Name: "name", Type: TypeString, Rules: "max=100"},
	{Name: "email", Type: TypeString, Rules: "email,max=100,email_domain"},
	{Name: "old_password", Type: TypeString},
	{Name: "password", Type: TypeString, Rules: "min=6,max=72"},
	{Name: "password_confirmation", Type: TypeString, EqualTo: "password"},
}

var CreateAppointmentSchema = Schema{
	{Name: "provider_id", Type: TypeUUID, Required: true},
	{Name: "date", Type: TypeDateTime, Required: true},
}

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the dashboard path.
	RouteRoot = "/"
	// RouteLogin is the login route.
	RouteLogin = "/login"
	// RouteLogout is the logout route.
	RouteLogout = "/logout"

	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"

	// RouteUsers is the user directory route.
	RouteUsers = "/users"
	// RouteUsersID is the user detail route pattern.
	RouteUsersID = RouteUsers + RouteParamID
	// RouteUsersIDStatus is the user status action route pattern.
	RouteUsersIDStatus = RouteUsersID + "/status"
	// RouteUsersIDRole is the user role action route pattern.
	RouteUsersIDRole = RouteUsersID + "/role"

	// RouteModerators is the moderators route.
	RouteModerators = "/moderators"
	// RouteModeratorsDelete is the moderator delete action route.
	RouteModeratorsDelete = RouteModerators + "/delete"

	// RouteInterests is the interests route.
	RouteInterests = "/interests"
	// RouteInterestsID is the interest rename action route pattern.
	RouteInterestsID = RouteInterests + RouteParamID
	// RouteInterestsIDDelete is the interest delete action route pattern.
	RouteInterestsIDDelete = RouteInterestsID + "/delete"

	// RouteAnalytics is the analytics route.
	RouteAnalytics = "/analytics"
)

// Items per page for the paginated lists.
const (
	// UsersPerPage is the number of users per directory page.
	UsersPerPage = 10
	// UserTabPerPage is the number of posts/activities/events per
	// user detail tab page.
	UserTabPerPage = 10
	// ModeratorsPerPage is the number of moderators per page.
	ModeratorsPerPage = 10
	// InterestsPerPage is the number of interests per page.
	InterestsPerPage = 20
)

const (
	redirectDashboard  = RouteRoot
	redirectLogin      = RouteLogin
	redirectUsers      = RouteUsers
	redirectModerators = RouteModerators
	redirectInterests  = RouteInterests
)

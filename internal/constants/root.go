package constants

const (
	AppName           = "wellspring"
	DefaultConfigPath = "~/.config/wellspring/wellspring.db"
	Version           = "v0.3.1"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:mm)
	TimeFormat = "15:04"

	// PrefsFileName is the flat key-value preferences file, kept next to the database
	PrefsFileName = "prefs.json"

	// Reminder defaults
	DefaultReminderEnabled     = false
	DefaultReminderIntervalMin = 60
	ReminderIntervalStepMin    = 15

	// Notify constants
	NotifierLockfileName   = "wellspring-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "app.wellspring.tray"
	TrayAppExecutable      = "wellspring-tray"

	// HydrationChannelID identifies the reminder notification channel at the tray app.
	HydrationChannelID = "hydration_reminders"

	// HydrationNotificationID is the stable notification identity; re-posting
	// with the same id replaces the previous instance instead of stacking.
	HydrationNotificationID = 1001

	HydrationNotificationTitle = "Time to Hydrate!"
	HydrationNotificationBody  = "Don't forget to drink water 💧"
)

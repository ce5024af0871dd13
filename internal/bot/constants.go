package bot

// channelIDPrefix is Telegram's numeric prefix convention for channel chat ids.
const channelIDPrefix = "-100"

const pollTimeoutSeconds = 60

// User-facing message texts. Plain and non-technical; internal errors are
// logged, never echoed here.
const (
	msgWelcome = `Welcome to SignatureBot!

This bot appends a signature to your Telegram channel posts.

Commands:
/set_signature <signature> - Set a signature
/change_signature <signature> - Update it
/remove_signature - Delete it

Example: /set_signature @my_channel`

	msgSetUsage = `Please provide a signature. Examples:
- Plain text: /set_signature @my_channel
- Hyperlinks: /set_signature [Channel 1](https://t.me/my_channel) [Channel 2](https://t.me/another_channel)`

	msgChangeUsage = `Please provide a new signature. Examples:
- Plain text: /change_signature @my_channel
- Hyperlinks: /change_signature [Channel 1](https://t.me/my_channel) [Channel 2](https://t.me/another_channel)`

	msgSetInstruction = `Please forward a message from the channel you want to set the signature for, or provide the channel ID (e.g., 24315194535).

You need to make me an admin first (if you haven't yet) so I can check your admin status.

Note: You can use plain text (e.g., @my_channel) or multiple hyperlinks in Markdown, e.g., [Channel 1](https://t.me/my_channel) [Channel 2](https://t.me/another_channel)`

	msgChangeInstruction = `Please forward a message from the channel you want to update the signature for, or provide the channel ID (e.g., 24315194535).

Note: You can use plain text (e.g., @my_channel) or multiple hyperlinks in Markdown, e.g., [Channel 1](https://t.me/my_channel) [Channel 2](https://t.me/another_channel)`

	msgRemoveInstruction = "Please forward a message from the channel you want to remove the signature from, or provide the channel ID (e.g., 24315194535). Note that I need to be an admin on your channel to check the admin status."

	msgProvideChannel = "Please forward a message from the channel or provide a valid channel ID. Note that I need to be an admin on your channel to check the admin status."

	msgNotAdmin = "You must be an admin or owner of the channel to manage its signature."

	msgUnknownCommand = "Unknown command. Use /start to see what I can do."

	msgOperationFailed = "Sorry, that did not work. Please try again later."

	msgApology = "Could not process your message."
)

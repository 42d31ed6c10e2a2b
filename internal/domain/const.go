package domain

const (
	// Gateway constants
	DEFAULT_IPFS_GATEWAY = "https://gateway.pinata.cloud"
	DEFAULT_PINATA_API   = "https://api.pinata.cloud"

	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// DEFAULT_PROMPT_TITLE is the placeholder used when the metadata blob
	// cannot be fetched in time
	DEFAULT_PROMPT_TITLE = "Untitled Prompt"
)

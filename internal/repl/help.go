package repl

// HelpText is the command reference printed by .help.
const HelpText = `# File Manager

Paths are resolved against the current directory unless they are absolute.
Quote paths that contain spaces: ` + "`cd 'My Documents'`" + `.

## Navigation

| Command | Description |
|---|---|
| ` + "`up`" + ` | Go to the parent directory |
| ` + "`cd <path>`" + ` | Go to a directory |
| ` + "`ls`" + ` | List the current directory |

## Files

| Command | Description |
|---|---|
| ` + "`cat <path>`" + ` | Print a file |
| ` + "`add <path>`" + ` | Create an empty file |
| ` + "`rn <old> <new>`" + ` | Rename a file |
| ` + "`rm <path>`" + ` | Remove a file |
| ` + "`cp <src> <destDir>`" + ` | Copy a file into a directory |
| ` + "`mv <src> <destDir>`" + ` | Move a file into a directory |

## Tools

| Command | Description |
|---|---|
| ` + "`hash <path>`" + ` | Print the digest of a file |
| ` + "`compress <src> <dest>`" + ` | Compress a file with brotli |
| ` + "`decompress <src> <dest>`" + ` | Decompress a brotli file |
| ` + "`os --EOL --cpus --homedir --username --architecture`" + ` | Print host information |

## Session

| Command | Description |
|---|---|
| ` + "`.help`" + ` | Show this help |
| ` + "`.exit`" + ` | Quit |
`

package config

// CONFIG_YML is the config used with --dev. It keeps an encrypted sqlite
// database under ./dev so no postgres server is needed during development
const CONFIG_YML = `
database:
  driver: sqlite

sqlite:
  passPhrase: passphrase
  dir: dev

log:
  level: debug
  sqlLevel: info

server:
  port: 3000
`

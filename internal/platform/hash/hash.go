package hash

// Hasher turns plain passwords into storable hashes and checks them back.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) (bool, error)
}

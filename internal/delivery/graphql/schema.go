package graphql

// Schema is the SDL served at /graphql. Every query and mutation maps to
// exactly one service call; relation fields resolve lazily when the parent
// row does not carry them.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		accounts(take: Int!, skip: Int!, search: String): [Account!]!
		account(id: ID!): Account!
		adresses(take: Int!, skip: Int!): [Adresses!]!
		adress(id: ID!): Adresses!
		establishments(take: Int!, skip: Int!, search: String): [Establishment!]!
		establishment(id: ID!): Establishment!
		networks(take: Int!, skip: Int!): [Network!]!
		network(id: ID!): Network!
	}

	type Mutation {
		createAccount(createAccountInput: CreateAccountInput!): Account!
		updateAccount(id: ID!, updateAccountInput: UpdateAccountInput!): Account!
		deleteAccount(id: ID!): Account!

		createAdresses(createAdressesInput: CreateAdressesInput!): Adresses!
		updateAdresses(id: ID!, updateAdressesInput: UpdateAdressesInput!): Adresses!
		deleteAdresses(id: ID!): Adresses!

		createEstablishment(createEstablishmentInput: CreateEstablishmentInput!): Establishment!
		updateEstablishment(id: ID!, updateEstablishmentInput: UpdateEstablishmentInput!): Establishment!
		deleteEstablishment(id: ID!): Establishment!

		createNetwork(createNetworkInput: CreateNetworkInput!): Network!
	}

	enum Genre {
		masc
		fem
		others
	}

	type Account {
		id: ID!
		firstName: String!
		lastName: String!
		email: String
		genre: Genre!
		dateOfBirth: String
		network: Network!
		adresses: [Adresses!]!
		createdAt: String!
		updatedAt: String!
		deletedAt: String
	}

	type Adresses {
		id: ID!
		zip: String!
		address: String!
		number: String!
		district: String!
		city: String!
		state: String!
		account: Account!
		createdAt: String!
		updatedAt: String!
		deletedAt: String
	}

	type Establishment {
		id: ID!
		name: String!
		phone: String
		network: Network!
		createdAt: String!
		updatedAt: String!
		deletedAt: String
	}

	type Network {
		id: ID!
		name: String!
		createdAt: String!
		updatedAt: String!
		deletedAt: String
	}

	input CreateAccountInput {
		firstName: String!
		lastName: String!
		email: String
		genre: Genre
		dateOfBirth: String
		password: String!
		networkId: String!
	}

	input UpdateAccountInput {
		firstName: String
		lastName: String
		email: String
		genre: Genre
		dateOfBirth: String
		password: String
	}

	input CreateAdressesInput {
		zip: String!
		address: String!
		number: String!
		district: String!
		city: String!
		state: String!
		accountId: String!
	}

	input UpdateAdressesInput {
		zip: String
		address: String
		number: String
		district: String
		city: String
		state: String
	}

	input CreateEstablishmentInput {
		name: String!
		phone: String
		networkId: String!
	}

	input UpdateEstablishmentInput {
		name: String
		phone: String
	}

	input CreateNetworkInput {
		name: String!
	}
`
